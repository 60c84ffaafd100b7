package types

import "errors"

// Usage errors reported by the builder and by Statement.Validate.
var (
	ErrNilStatement            = errors.New("statement is nil")
	ErrMissingSource           = errors.New("statement has no source")
	ErrSourceAlreadySet        = errors.New("statement source is already set")
	ErrNegativeTop             = errors.New("top must not be negative")
	ErrMissingAlias            = errors.New("derived table requires an alias")
	ErrEmptyExpression         = errors.New("expression must not be empty")
	ErrSelfReference           = errors.New("statement cannot reference itself")
	ErrHavingWithoutGroupBy    = errors.New("having requires group by")
	ErrMissingJoinCondition    = errors.New("join requires an on condition")
	ErrUnexpectedJoinCondition = errors.New("cross join cannot have an on condition")
	ErrInvalidDirection        = errors.New("order direction must be asc or desc")
	ErrTooManyArguments        = errors.New("too many arguments")
)
