// Package postgres provides the PostgreSQL dialect renderer for seaquill.
//
// Row limits render as a trailing "limit N".
package postgres

import (
	"github.com/zoobzio/seaquill/internal/render"
	"github.com/zoobzio/seaquill/internal/types"
)

var dialect = render.Dialect{
	Name: "postgres",
	Capabilities: render.Capabilities{
		RowLimit:  render.RowLimitLimit,
		RightJoin: true,
		FullJoin:  true,
	},
}

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to PostgreSQL SQL.
func (r *Renderer) Render(stmt *types.Statement) (string, error) {
	return render.Render(dialect, stmt)
}

// Capabilities returns the PostgreSQL capabilities.
func (r *Renderer) Capabilities() render.Capabilities {
	return dialect.Capabilities
}
