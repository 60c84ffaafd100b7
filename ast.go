package seaquill

import "github.com/zoobzio/seaquill/internal/types"

// Statement is the in-memory tree of one SELECT statement.
// This is re-exported from internal/types for use by consumers.
type Statement = types.Statement
