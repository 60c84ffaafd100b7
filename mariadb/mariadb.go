// Package mariadb provides the MariaDB dialect renderer for seaquill.
//
// Row limits render as a trailing "limit N". MariaDB has no FULL OUTER JOIN.
package mariadb

import (
	"github.com/zoobzio/seaquill/internal/render"
	"github.com/zoobzio/seaquill/internal/types"
)

var dialect = render.Dialect{
	Name: "mariadb",
	Capabilities: render.Capabilities{
		RowLimit:  render.RowLimitLimit,
		RightJoin: true,
		FullJoin:  false,
	},
}

// Renderer implements the MariaDB dialect renderer.
type Renderer struct{}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render converts a statement to MariaDB SQL.
func (r *Renderer) Render(stmt *types.Statement) (string, error) {
	return render.Render(dialect, stmt)
}

// Capabilities returns the MariaDB capabilities.
func (r *Renderer) Capabilities() render.Capabilities {
	return dialect.Capabilities
}
