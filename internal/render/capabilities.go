package render

import "github.com/zoobzio/seaquill/internal/types"

// RowLimitStyle indicates how a dialect spells a row limit.
type RowLimitStyle int

const (
	RowLimitTop   RowLimitStyle = iota // select top N ...
	RowLimitLimit                      // ... limit N
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	RowLimit  RowLimitStyle
	RightJoin bool // right outer join
	FullJoin  bool // full outer join
}

// SupportsJoin reports whether the dialect can render the join type.
func (c Capabilities) SupportsJoin(t types.JoinType) bool {
	switch t {
	case types.RightJoin:
		return c.RightJoin
	case types.FullJoin:
		return c.FullJoin
	}
	return true
}
