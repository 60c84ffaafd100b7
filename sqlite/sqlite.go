// Package sqlite provides the SQLite dialect renderer for seaquill.
//
// Row limits render as a trailing "limit N". RIGHT and FULL joins require
// SQLite 3.39 or later.
package sqlite

import (
	"github.com/zoobzio/seaquill/internal/render"
	"github.com/zoobzio/seaquill/internal/types"
)

var dialect = render.Dialect{
	Name: "sqlite",
	Capabilities: render.Capabilities{
		RowLimit:  render.RowLimitLimit,
		RightJoin: true,
		FullJoin:  true,
	},
}

// Renderer implements the SQLite dialect renderer.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to SQLite SQL.
func (r *Renderer) Render(stmt *types.Statement) (string, error) {
	return render.Render(dialect, stmt)
}

// Capabilities returns the SQLite capabilities.
func (r *Renderer) Capabilities() render.Capabilities {
	return dialect.Capabilities
}
