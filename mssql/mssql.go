// Package mssql provides the SQL Server dialect renderer for seaquill.
//
// Output is identical to the package default: row limits render as "top N".
package mssql

import (
	"github.com/zoobzio/seaquill/internal/render"
	"github.com/zoobzio/seaquill/internal/types"
)

var dialect = render.Dialect{
	Name: "mssql",
	Capabilities: render.Capabilities{
		RowLimit:  render.RowLimitTop,
		RightJoin: true,
		FullJoin:  true,
	},
}

// Renderer implements the SQL Server dialect renderer.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to SQL Server SQL.
func (r *Renderer) Render(stmt *types.Statement) (string, error) {
	return render.Render(dialect, stmt)
}

// Capabilities returns the SQL Server capabilities.
func (r *Renderer) Capabilities() render.Capabilities {
	return dialect.Capabilities
}
