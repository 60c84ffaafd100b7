// Package seaquill assembles SELECT statements from SQL text fragments.
//
// A statement is built through chained calls on a Builder and rendered to a
// single SQL string. Clause order, keyword spelling and separators are fixed by
// the renderer; the fragments themselves (expressions, table names, conditions)
// are caller-supplied SQL and pass through verbatim, without validation or
// escaping.
//
// # Basic Usage
//
//	sql := seaquill.Select().
//		Field("foo").
//		Field("min(bar)", "MinBar").
//		From("Users", "u").
//		Where("u.Active = 1").
//		GroupBy("foo").
//		OrderBy("foo").
//		String()
//	// select foo, min(bar) as MinBar from Users u where u.Active = 1 group by foo order by foo asc
//
// # Nested Statements
//
// A builder can be used as a derived table or combined with another through
// UNION / UNION ALL. Nested statements are rendered recursively on every call:
//
//	users := seaquill.Select().Field("foo").From("Users")
//	seaquill.Select().Field("foo").FromSelect(users, "u").String()
//	// select foo from (select foo from Users) u
//
// # Errors
//
// Misuse (a second From, a negative Top, a derived table without alias, an
// empty fragment, a statement embedded in itself) is recorded on the builder
// and returned by Build, Render and Err. Every later call is a no-op once an
// error is recorded. String returns "" for an invalid statement.
//
// # Dialects
//
// The default renderer emits SQL Server style row limits ("select top 10 ...").
// The mssql, postgres, sqlite and mariadb packages provide Renderer
// implementations; the last three emit a trailing "limit N" instead.
package seaquill

import (
	"github.com/zoobzio/seaquill/internal/render"
	"github.com/zoobzio/seaquill/internal/types"
)

// Field is one entry of the select list.
type Field = types.Field

// Table is a table reference in a FROM or JOIN clause.
type Table = types.Table

// Join is a JOIN clause.
type Join = types.Join

// OrderBy is one ORDER BY entry.
type OrderBy = types.OrderBy

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// JoinType represents the type of SQL join.
type JoinType = types.JoinType

// Re-export join type constants for public API.
const (
	InnerJoin = types.InnerJoin
	LeftJoin  = types.LeftJoin
	RightJoin = types.RightJoin
	FullJoin  = types.FullJoin
	CrossJoin = types.CrossJoin
)

// Re-export usage errors for public API.
var (
	ErrNilStatement            = types.ErrNilStatement
	ErrMissingSource           = types.ErrMissingSource
	ErrSourceAlreadySet        = types.ErrSourceAlreadySet
	ErrNegativeTop             = types.ErrNegativeTop
	ErrMissingAlias            = types.ErrMissingAlias
	ErrEmptyExpression         = types.ErrEmptyExpression
	ErrSelfReference           = types.ErrSelfReference
	ErrHavingWithoutGroupBy    = types.ErrHavingWithoutGroupBy
	ErrMissingJoinCondition    = types.ErrMissingJoinCondition
	ErrUnexpectedJoinCondition = types.ErrUnexpectedJoinCondition
	ErrInvalidDirection        = types.ErrInvalidDirection
	ErrTooManyArguments        = types.ErrTooManyArguments
)

// UnsupportedFeatureError indicates a statement the chosen dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// ErrUnsupportedFeature matches any UnsupportedFeatureError via errors.Is.
var ErrUnsupportedFeature = render.ErrUnsupportedFeature

// Capabilities describes the SQL features supported by a dialect.
type Capabilities = render.Capabilities
