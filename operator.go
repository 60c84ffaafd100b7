package seaquill

import "github.com/zoobzio/seaquill/internal/types"

// SetOperation represents UNION or UNION ALL.
type SetOperation = types.SetOperation

// Re-export set operation constants for public API.
const (
	Union    = types.Union
	UnionAll = types.UnionAll
)

// SetOperand is one UNION / UNION ALL member appended to a statement.
type SetOperand = types.SetOperand
