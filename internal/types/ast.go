package types

import "fmt"

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "asc"
	DESC Direction = "desc"
)

// IsValid reports whether d is ASC or DESC.
func (d Direction) IsValid() bool {
	return d == ASC || d == DESC
}

// OrderBy represents one ORDER BY entry.
type OrderBy struct {
	Expr      string
	Direction Direction
}

// JoinType represents the type of SQL join, rendered verbatim before the table.
type JoinType string

const (
	InnerJoin JoinType = "inner join"
	LeftJoin  JoinType = "left outer join"
	RightJoin JoinType = "right outer join"
	FullJoin  JoinType = "full outer join"
	CrossJoin JoinType = "cross join"
)

// RequiresOn reports whether the join type takes an ON condition.
func (j JoinType) RequiresOn() bool {
	return j != CrossJoin
}

// Join represents a SQL JOIN clause.
type Join struct {
	Type  JoinType
	Table Table
	On    string
}

// SetOperand is a statement appended through a set operation.
type SetOperand struct {
	Operation SetOperation
	Statement *Statement
}

// Statement represents a single SELECT statement, including any statements
// nested in it as a derived table or as set operands.
// This is exported from the internal package so renderers can use it,
// but external users cannot import this package.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Statement struct {
	Fields      []Field
	Distinct    bool
	Top         *int
	Source      *Source
	Joins       []Join
	Where       ConditionGroup
	GroupBy     []string
	Having      ConditionGroup
	Ordering    []OrderBy
	SetOperands []SetOperand
}

// Validate checks the statement and every statement nested in it.
func (s *Statement) Validate() error {
	return s.validate(make(map[*Statement]bool))
}

func (s *Statement) validate(path map[*Statement]bool) error {
	if s == nil {
		return ErrNilStatement
	}
	if path[s] {
		return ErrSelfReference
	}
	path[s] = true
	defer delete(path, s)

	if s.Source == nil {
		return ErrMissingSource
	}
	if s.Top != nil && *s.Top < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTop, *s.Top)
	}
	for i, f := range s.Fields {
		if f.Expr == "" {
			return fmt.Errorf("field %d: %w", i, ErrEmptyExpression)
		}
	}
	for i, j := range s.Joins {
		if j.Table.Name == "" {
			return fmt.Errorf("join %d: %w", i, ErrEmptyExpression)
		}
		if j.Type.RequiresOn() && j.On == "" {
			return fmt.Errorf("join %d: %w", i, ErrMissingJoinCondition)
		}
		if !j.Type.RequiresOn() && j.On != "" {
			return fmt.Errorf("join %d: %w", i, ErrUnexpectedJoinCondition)
		}
	}
	for i, o := range s.Ordering {
		if o.Expr == "" {
			return fmt.Errorf("order by %d: %w", i, ErrEmptyExpression)
		}
		// An empty direction renders as asc.
		if o.Direction != "" && !o.Direction.IsValid() {
			return fmt.Errorf("order by %s: %w: %q", o.Expr, ErrInvalidDirection, string(o.Direction))
		}
	}
	if !s.Having.IsEmpty() && len(s.GroupBy) == 0 {
		return ErrHavingWithoutGroupBy
	}

	if sub := s.Source.Subquery; sub != nil {
		if sub.Alias == "" {
			return ErrMissingAlias
		}
		if err := sub.Statement.validate(path); err != nil {
			return fmt.Errorf("subquery %s: %w", sub.Alias, err)
		}
	} else if s.Source.Table == nil || s.Source.Table.Name == "" {
		return ErrMissingSource
	}

	for i, operand := range s.SetOperands {
		if err := operand.Statement.validate(path); err != nil {
			return fmt.Errorf("%s operand %d: %w", operand.Operation, i, err)
		}
	}
	return nil
}

// Contains reports whether target is s or is reachable from s through
// derived tables or set operands.
func (s *Statement) Contains(target *Statement) bool {
	return s.contains(target, make(map[*Statement]bool))
}

func (s *Statement) contains(target *Statement, seen map[*Statement]bool) bool {
	if s == nil || seen[s] {
		return false
	}
	if s == target {
		return true
	}
	seen[s] = true
	if s.Source != nil && s.Source.Subquery != nil {
		if s.Source.Subquery.Statement.contains(target, seen) {
			return true
		}
	}
	for _, operand := range s.SetOperands {
		if operand.Statement.contains(target, seen) {
			return true
		}
	}
	return false
}
