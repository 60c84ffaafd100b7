package seaquill

import (
	"fmt"

	"github.com/zoobzio/seaquill/internal/types"
)

// Builder provides a fluent API for constructing a SELECT statement.
// Every method mutates the receiver and returns it.
type Builder struct {
	stmt *types.Statement
	err  error
	// embedded holds the builders used as derived table or set operands, so
	// errors recorded on them after embedding still surface here.
	embedded []*Builder
}

// Select creates a new empty SELECT statement builder.
func Select() *Builder {
	return &Builder{stmt: &types.Statement{}}
}

// Statement returns the statement under construction.
func (b *Builder) Statement() *types.Statement {
	return b.stmt
}

// Err returns the first error recorded on the builder or on any builder
// embedded in it.
func (b *Builder) Err() error {
	return b.firstError(make(map[*Builder]bool))
}

func (b *Builder) firstError(seen map[*Builder]bool) error {
	if seen[b] {
		return nil
	}
	seen[b] = true
	if b.err != nil {
		return b.err
	}
	for _, child := range b.embedded {
		if err := child.firstError(seen); err != nil {
			return err
		}
	}
	return nil
}

// Field appends an expression to the select list, optionally aliased.
func (b *Builder) Field(expr string, alias ...string) *Builder {
	if b.err != nil {
		return b
	}
	if expr == "" {
		b.err = fmt.Errorf("field: %w", types.ErrEmptyExpression)
		return b
	}
	if len(alias) > 1 {
		b.err = fmt.Errorf("field %s: %w: at most one alias", expr, types.ErrTooManyArguments)
		return b
	}
	f := types.Field{Expr: expr}
	if len(alias) > 0 {
		f.Alias = alias[0]
	}
	b.stmt.Fields = append(b.stmt.Fields, f)
	return b
}

// Fields appends several unaliased expressions to the select list.
func (b *Builder) Fields(exprs ...string) *Builder {
	for _, expr := range exprs {
		b.Field(expr)
	}
	return b
}

// Distinct sets the DISTINCT flag.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Distinct = true
	return b
}

// Top sets the row limit. Zero is legal.
func (b *Builder) Top(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("%w: %d", types.ErrNegativeTop, n)
		return b
	}
	b.stmt.Top = &n
	return b
}

// From sets the source to a table, optionally aliased.
// A statement has exactly one source; a second call is an error.
func (b *Builder) From(table string, alias ...string) *Builder {
	if b.err != nil {
		return b
	}
	if b.stmt.Source != nil {
		b.err = fmt.Errorf("from %s: %w", table, types.ErrSourceAlreadySet)
		return b
	}
	if table == "" {
		b.err = fmt.Errorf("from: %w", types.ErrEmptyExpression)
		return b
	}
	if len(alias) > 1 {
		b.err = fmt.Errorf("from %s: %w: at most one alias", table, types.ErrTooManyArguments)
		return b
	}
	t := &types.Table{Name: table}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	b.stmt.Source = &types.Source{Table: t}
	return b
}

// FromSelect sets the source to a derived table. The alias is required.
func (b *Builder) FromSelect(sub *Builder, alias string) *Builder {
	if b.err != nil {
		return b
	}
	if b.stmt.Source != nil {
		b.err = fmt.Errorf("from subquery %s: %w", alias, types.ErrSourceAlreadySet)
		return b
	}
	if alias == "" {
		b.err = fmt.Errorf("from subquery: %w", types.ErrMissingAlias)
		return b
	}
	if err := b.embed(sub); err != nil {
		b.err = fmt.Errorf("from subquery %s: %w", alias, err)
		return b
	}
	b.stmt.Source = &types.Source{
		Subquery: &types.Subquery{Statement: sub.stmt, Alias: alias},
	}
	return b
}

// Join adds an INNER JOIN.
func (b *Builder) Join(table, alias, on string) *Builder {
	return b.addJoin(types.InnerJoin, table, alias, on)
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(table, alias, on string) *Builder {
	return b.addJoin(types.InnerJoin, table, alias, on)
}

// LeftJoin adds a LEFT OUTER JOIN.
func (b *Builder) LeftJoin(table, alias, on string) *Builder {
	return b.addJoin(types.LeftJoin, table, alias, on)
}

// RightJoin adds a RIGHT OUTER JOIN.
func (b *Builder) RightJoin(table, alias, on string) *Builder {
	return b.addJoin(types.RightJoin, table, alias, on)
}

// FullJoin adds a FULL OUTER JOIN.
func (b *Builder) FullJoin(table, alias, on string) *Builder {
	return b.addJoin(types.FullJoin, table, alias, on)
}

// CrossJoin adds a CROSS JOIN (no ON clause needed).
func (b *Builder) CrossJoin(table, alias string) *Builder {
	return b.addJoin(types.CrossJoin, table, alias, "")
}

// addJoin is a helper to add joins. An empty alias renders no alias.
func (b *Builder) addJoin(joinType types.JoinType, table, alias, on string) *Builder {
	if b.err != nil {
		return b
	}
	if table == "" {
		b.err = fmt.Errorf("%s: %w", joinType, types.ErrEmptyExpression)
		return b
	}
	if joinType.RequiresOn() && on == "" {
		b.err = fmt.Errorf("%s %s: %w", joinType, table, types.ErrMissingJoinCondition)
		return b
	}

	b.stmt.Joins = append(b.stmt.Joins, types.Join{
		Type:  joinType,
		Table: types.Table{Name: table, Alias: alias},
		On:    on,
	})
	return b
}

// Where sets or adds a condition. Repeated calls are combined with AND.
func (b *Builder) Where(condition string) *Builder {
	if b.err != nil {
		return b
	}
	if condition == "" {
		b.err = fmt.Errorf("where: %w", types.ErrEmptyExpression)
		return b
	}
	b.stmt.Where.Add(condition)
	return b
}

// GroupBy appends GROUP BY columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	if b.err != nil {
		return b
	}
	for _, column := range columns {
		if column == "" {
			b.err = fmt.Errorf("group by: %w", types.ErrEmptyExpression)
			return b
		}
	}
	b.stmt.GroupBy = append(b.stmt.GroupBy, columns...)
	return b
}

// Having adds a HAVING condition. Repeated calls are combined with AND.
// It may be called before GroupBy; a statement with HAVING but no GROUP BY
// fails at Build.
func (b *Builder) Having(condition string) *Builder {
	if b.err != nil {
		return b
	}
	if condition == "" {
		b.err = fmt.Errorf("having: %w", types.ErrEmptyExpression)
		return b
	}
	b.stmt.Having.Add(condition)
	return b
}

// OrderBy adds ordering. The direction defaults to ASC; anything other
// than ASC or DESC is an error.
func (b *Builder) OrderBy(column string, direction ...types.Direction) *Builder {
	if b.err != nil {
		return b
	}
	if column == "" {
		b.err = fmt.Errorf("order by: %w", types.ErrEmptyExpression)
		return b
	}
	if len(direction) > 1 {
		b.err = fmt.Errorf("order by %s: %w: at most one direction", column, types.ErrTooManyArguments)
		return b
	}
	order := types.OrderBy{Expr: column, Direction: types.ASC}
	if len(direction) > 0 && direction[0] != "" {
		if !direction[0].IsValid() {
			b.err = fmt.Errorf("order by %s: %w: %q", column, types.ErrInvalidDirection, string(direction[0]))
			return b
		}
		order.Direction = direction[0]
	}
	b.stmt.Ordering = append(b.stmt.Ordering, order)
	return b
}

// Union appends other with UNION.
func (b *Builder) Union(other *Builder) *Builder {
	return b.addSetOperand(types.Union, other)
}

// UnionAll appends other with UNION ALL.
func (b *Builder) UnionAll(other *Builder) *Builder {
	return b.addSetOperand(types.UnionAll, other)
}

func (b *Builder) addSetOperand(op types.SetOperation, other *Builder) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.embed(other); err != nil {
		b.err = fmt.Errorf("%s: %w", op, err)
		return b
	}
	b.stmt.SetOperands = append(b.stmt.SetOperands, types.SetOperand{
		Operation: op,
		Statement: other.stmt,
	})
	return b
}

// embed checks that other can be nested in b and records it.
func (b *Builder) embed(other *Builder) error {
	if other == nil || other.stmt == nil {
		return types.ErrNilStatement
	}
	if other.stmt.Contains(b.stmt) {
		return types.ErrSelfReference
	}
	b.embedded = append(b.embedded, other)
	return nil
}

// Build returns the constructed statement or an error.
func (b *Builder) Build() (*types.Statement, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}

	// Validate the statement
	if err := b.stmt.Validate(); err != nil {
		return nil, err
	}

	return b.stmt, nil
}

// MustBuild returns the statement or panics on error.
func (b *Builder) MustBuild() *types.Statement {
	stmt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return stmt
}

// Render builds the statement and renders it with the default dialect.
func (b *Builder) Render() (string, error) {
	return b.RenderWith(DefaultRenderer())
}

// RenderWith builds the statement and renders it with r.
func (b *Builder) RenderWith(r Renderer) (string, error) {
	stmt, err := b.Build()
	if err != nil {
		return "", err
	}
	return r.Render(stmt)
}

// MustRender builds and renders the statement or panics on error.
func (b *Builder) MustRender() string {
	sql, err := b.Render()
	if err != nil {
		panic(err)
	}
	return sql
}

// String renders the statement with the default dialect. An invalid
// statement renders as the empty string; use Render to get the error.
func (b *Builder) String() string {
	sql, err := b.Render()
	if err != nil {
		return ""
	}
	return sql
}
