package types

import "strings"

// LogicOperator represents how conditions are combined.
type LogicOperator string

// AND is the only combinator used for repeated Where/Having calls.
const AND LogicOperator = "and"

// ConditionGroup holds condition fragments combined with AND.
type ConditionGroup struct {
	Conditions []string
}

// Add appends a condition fragment.
func (g *ConditionGroup) Add(condition string) {
	g.Conditions = append(g.Conditions, condition)
}

// IsEmpty reports whether the group holds no conditions.
func (g ConditionGroup) IsEmpty() bool {
	return len(g.Conditions) == 0
}

// SQL renders the group. A single condition is emitted verbatim; several are
// each parenthesized so caller precedence survives the combination.
func (g ConditionGroup) SQL() string {
	switch len(g.Conditions) {
	case 0:
		return ""
	case 1:
		return g.Conditions[0]
	}
	parts := make([]string, len(g.Conditions))
	for i, c := range g.Conditions {
		parts[i] = "(" + c + ")"
	}
	return strings.Join(parts, " "+string(AND)+" ")
}
