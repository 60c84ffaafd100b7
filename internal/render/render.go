// Package render holds the statement renderer shared by every dialect.
package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/seaquill/internal/types"
)

// Dialect names a target database and the capabilities its renderer honours.
type Dialect struct {
	Name         string
	Capabilities Capabilities
}

// renderContext tracks state that differs between nesting positions.
type renderContext struct {
	dialect Dialect
	// compound is set while rendering a statement that is joined to another
	// by a set operation.
	compound bool
}

// withOperand creates a child context for a set operand.
func (ctx renderContext) withOperand() renderContext {
	return renderContext{dialect: ctx.dialect, compound: true}
}

// withSubquery creates a child context for a derived table.
func (ctx renderContext) withSubquery() renderContext {
	return renderContext{dialect: ctx.dialect}
}

// Render validates stmt and converts it to SQL text for the dialect.
// Nothing is cached: every call reflects the statement's current state.
func Render(d Dialect, stmt *types.Statement) (string, error) {
	if err := stmt.Validate(); err != nil {
		return "", fmt.Errorf("invalid statement: %w", err)
	}

	var sql strings.Builder
	if err := renderSelect(stmt, &sql, renderContext{dialect: d}); err != nil {
		return "", err
	}
	return sql.String(), nil
}

func renderSelect(stmt *types.Statement, sql *strings.Builder, ctx renderContext) error {
	caps := ctx.dialect.Capabilities
	if len(stmt.SetOperands) > 0 {
		ctx.compound = true
	}
	if ctx.compound && caps.RowLimit == RowLimitLimit {
		if stmt.Top != nil {
			return NewUnsupportedFeatureError(ctx.dialect.Name, "row limit inside union",
				"limit the combined result from an enclosing derived table")
		}
		if len(stmt.Ordering) > 0 {
			return NewUnsupportedFeatureError(ctx.dialect.Name, "order by inside union",
				"order the combined result from an enclosing derived table")
		}
	}

	sql.WriteString("select")

	if stmt.Distinct {
		sql.WriteString(" distinct")
	}

	if stmt.Top != nil && caps.RowLimit == RowLimitTop {
		fmt.Fprintf(sql, " top %d", *stmt.Top)
	}

	// Fields
	sql.WriteString(" ")
	if len(stmt.Fields) == 0 {
		sql.WriteString("*")
	} else {
		selections := make([]string, len(stmt.Fields))
		for i, field := range stmt.Fields {
			selections[i] = renderField(field)
		}
		sql.WriteString(strings.Join(selections, ", "))
	}

	// FROM
	sql.WriteString(" from ")
	if sub := stmt.Source.Subquery; sub != nil {
		sql.WriteString("(")
		if err := renderSelect(sub.Statement, sql, ctx.withSubquery()); err != nil {
			return err
		}
		sql.WriteString(") ")
		sql.WriteString(sub.Alias)
	} else {
		sql.WriteString(renderTable(*stmt.Source.Table))
	}

	// JOINs
	for _, join := range stmt.Joins {
		if !caps.SupportsJoin(join.Type) {
			return NewUnsupportedFeatureError(ctx.dialect.Name, string(join.Type))
		}
		sql.WriteString(" ")
		sql.WriteString(string(join.Type))
		sql.WriteString(" ")
		sql.WriteString(renderTable(join.Table))
		if join.Type.RequiresOn() {
			sql.WriteString(" on ")
			sql.WriteString(join.On)
		}
	}

	// WHERE
	if !stmt.Where.IsEmpty() {
		sql.WriteString(" where ")
		sql.WriteString(stmt.Where.SQL())
	}

	// GROUP BY
	if len(stmt.GroupBy) > 0 {
		sql.WriteString(" group by ")
		sql.WriteString(strings.Join(stmt.GroupBy, ", "))
	}

	// HAVING
	if !stmt.Having.IsEmpty() {
		sql.WriteString(" having ")
		sql.WriteString(stmt.Having.SQL())
	}

	// ORDER BY
	if len(stmt.Ordering) > 0 {
		sql.WriteString(" order by ")
		orderParts := make([]string, len(stmt.Ordering))
		for i, order := range stmt.Ordering {
			direction := order.Direction
			if direction == "" {
				direction = types.ASC
			}
			orderParts[i] = order.Expr + " " + string(direction)
		}
		sql.WriteString(strings.Join(orderParts, ", "))
	}

	// LIMIT
	if stmt.Top != nil && caps.RowLimit == RowLimitLimit {
		fmt.Fprintf(sql, " limit %d", *stmt.Top)
	}

	// UNION / UNION ALL
	for _, operand := range stmt.SetOperands {
		sql.WriteString(" ")
		sql.WriteString(string(operand.Operation))
		sql.WriteString(" ")
		if err := renderSelect(operand.Statement, sql, ctx.withOperand()); err != nil {
			return err
		}
	}

	return nil
}

func renderField(f types.Field) string {
	if f.Alias != "" {
		return f.Expr + " as " + f.Alias
	}
	return f.Expr
}

func renderTable(t types.Table) string {
	if t.Alias != "" {
		return t.Name + " " + t.Alias
	}
	return t.Name
}
