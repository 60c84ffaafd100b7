package seaquill

import (
	"github.com/zoobzio/seaquill/internal/render"
)

// defaultDialect renders row limits as "top N" and accepts every join type.
var defaultDialect = render.Dialect{
	Name: "default",
	Capabilities: render.Capabilities{
		RowLimit:  render.RowLimitTop,
		RightJoin: true,
		FullJoin:  true,
	},
}

// Render converts a statement to SQL text with the default dialect.
func Render(stmt *Statement) (string, error) {
	return render.Render(defaultDialect, stmt)
}

// defaultRenderer adapts Render to the Renderer interface.
type defaultRenderer struct{}

func (defaultRenderer) Render(stmt *Statement) (string, error) {
	return Render(stmt)
}

// DefaultRenderer returns the Renderer used by Builder.Render.
func DefaultRenderer() Renderer {
	return defaultRenderer{}
}
