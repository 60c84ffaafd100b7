package types

// Field is one entry of the select list. Expr is caller-supplied SQL text and
// is never inspected.
type Field struct {
	Expr  string
	Alias string // Optional, rendered as "expr as alias"
}

// GetExpr returns the field expression.
func (f Field) GetExpr() string {
	return f.Expr
}

// GetAlias returns the field alias.
func (f Field) GetAlias() string {
	return f.Alias
}
