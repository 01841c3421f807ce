package linda

import "time"

// Record is the domain entity persisted for an income order.
type Record struct {
	CreatedAt time.Time
	Tax       int
	Category  string
}

// NewRecord builds a Record from a classified command.
//
// Only income orders have a record producer; for everything else NewRecord
// returns (nil, false). Expense classifies fine but is deliberately inert:
// whether it should ever gain a producer is an open product question, so the
// asymmetry stays. Tax is not range-checked, negative and zero amounts pass
// through as-is.
func NewRecord(c Classified) (*Record, bool) {
	if !c.order || c.kind != Income {
		return nil, false
	}
	return &Record{
		CreatedAt: c.createdAt,
		Tax:       c.tax,
		Category:  c.category,
	}, true
}
