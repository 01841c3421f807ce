package linda

// Statement is a persistence statement with bind arguments. The category
// text travels in Args, never interpolated into the SQL, so adversarial
// input cannot change the statement's meaning.
type Statement struct {
	SQL  string
	Args []any
}

// TableName is the table income orders are inserted into. It is a SQL
// keyword, hence the quoting everywhere it appears.
const TableName = "transaction"

const insertOrder = "INSERT INTO `" + TableName + "` (created_at, tax, category) VALUES (?, ?, ?)"

// NewStatement renders a classified command into an insert statement.
//
// Like NewRecord, only income orders have a producer; all other
// classifications return (Statement{}, false) and callers must treat that as
// "nothing to persist", not as a failure. The created_at argument is the
// command's parse time in unix seconds.
func NewStatement(c Classified) (Statement, bool) {
	if !c.order || c.kind != Income {
		return Statement{}, false
	}
	return Statement{
		SQL:  insertOrder,
		Args: []any{c.createdAt.Unix(), c.tax, c.category},
	}, true
}
