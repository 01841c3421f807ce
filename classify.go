package linda

import (
	"fmt"
	"time"
)

// OrderKind is the semantic operation a classified command represents.
type OrderKind int

const (
	Income OrderKind = iota
	Expense
)

func (k OrderKind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "order"
	}
}

// orderKindOf maps a marker to its order kind. The '+' marker is accepted by
// the tokenizer but deliberately has no mapping here; it must fail loudly
// instead of passing through.
func orderKindOf(marker rune) (OrderKind, error) {
	switch marker {
	case '&':
		return Income, nil
	case '>':
		return Expense, nil
	default:
		return 0, fmt.Errorf("marker %q: %w", marker, ErrNoOrderKind)
	}
}

// Classified is a command known to match the order shape
// [marker, number, text]. Its typed fields are extracted once, during
// classification, so no downstream consumer ever touches a token of the
// wrong variant.
type Classified struct {
	kind      OrderKind
	createdAt time.Time
	tax       int
	category  string
	order     bool
}

// IsOrder reports whether the command classified at all. A false value is a
// terminal "no operation", not a failure.
func (c Classified) IsOrder() bool { return c.order }

// Kind returns the order kind. Only meaningful when IsOrder is true.
func (c Classified) Kind() OrderKind { return c.kind }

// CreatedAt returns the parse time of the underlying command.
func (c Classified) CreatedAt() time.Time { return c.createdAt }

// Tax returns the order's amount field.
func (c Classified) Tax() int { return c.tax }

// Category returns the order's category field.
func (c Classified) Category() string { return c.category }

// Classify pattern-matches the command against the order shape
// [marker, number, text].
//
// Any other length or arrangement returns a zero Classified and a nil error:
// nothing to do for this line. When the shape matches but the marker has no
// order kind mapping, Classify fails with ErrNoOrderKind.
func (c *Command) Classify() (Classified, error) {
	if len(c.pack) != 3 {
		return Classified{}, nil
	}
	m, num, txt := c.pack[0], c.pack[1], c.pack[2]
	if m.kind != MarkerToken || num.kind != NumberToken || txt.kind != TextToken {
		return Classified{}, nil
	}

	kind, err := orderKindOf(m.marker)
	if err != nil {
		return Classified{}, err
	}
	return Classified{
		kind:      kind,
		createdAt: c.createdAt,
		tax:       num.number,
		category:  txt.text,
		order:     true,
	}, nil
}
