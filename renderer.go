package seaquill

import "github.com/zoobzio/seaquill/internal/types"

// Renderer defines the interface for SQL dialect-specific rendering.
type Renderer interface {
	// Render converts a statement to dialect-specific SQL text.
	Render(stmt *types.Statement) (string, error)
}
