package types

// Table represents a table reference in a FROM or JOIN clause.
type Table struct {
	Name  string
	Alias string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetAlias returns the table alias.
func (t Table) GetAlias() string {
	return t.Alias
}

// Subquery is a statement used as a derived table. SQL requires the alias.
type Subquery struct {
	Statement *Statement
	Alias     string
}

// Source is the FROM target of a statement. Exactly one of Table and
// Subquery is set.
type Source struct {
	Table    *Table
	Subquery *Subquery
}

// GetAlias returns the alias of whichever target is set.
func (s Source) GetAlias() string {
	if s.Subquery != nil {
		return s.Subquery.Alias
	}
	if s.Table != nil {
		return s.Table.Alias
	}
	return ""
}
