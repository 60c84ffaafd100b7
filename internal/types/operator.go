package types

// SetOperation represents a set operator joining two statements.
type SetOperation string

const (
	Union    SetOperation = "union"
	UnionAll SetOperation = "union all"
)
