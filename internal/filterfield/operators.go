// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filterfield

import "fmt"

// Operator names understood by stores.
const (
	OpEq   = "eq"
	OpNe   = "ne"
	OpGte  = "gte"
	OpLte  = "lte"
	OpGt   = "gt"
	OpLt   = "lt"
	OpLike = "like"
	OpIn   = "in"
)

// Operator is one choice on the operator button.
type Operator struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
}

// ButtonOperators are offered, in order, by the operator button on number and
// date columns.
var ButtonOperators = []Operator{
	{Name: OpEq, Label: "Equal to"},
	{Name: OpNe, Label: "Does not equal"},
	{Name: OpGte, Label: "Greater than or equal"},
	{Name: OpLte, Label: "Less Than or equal to"},
	{Name: OpGt, Label: "Greater than"},
	{Name: OpLt, Label: "Less than"},
}

// IsOperator reports whether name is a known operator.
func IsOperator(name string) bool {
	switch name {
	case OpEq, OpNe, OpGte, OpLte, OpGt, OpLt, OpLike, OpIn:
		return true
	}
	return false
}

// OperatorLabel returns the button label for name, or name itself.
func OperatorLabel(name string) string {
	for _, op := range ButtonOperators {
		if op.Name == name {
			return op.Label
		}
	}
	return name
}

// nextButtonOperator returns the button operator following current, wrapping.
func nextButtonOperator(current string) string {
	for i, op := range ButtonOperators {
		if op.Name == current {
			return ButtonOperators[(i+1)%len(ButtonOperators)].Name
		}
	}
	return ButtonOperators[0].Name
}

func validateButtonOperator(name string) error {
	for _, op := range ButtonOperators {
		if op.Name == name {
			return nil
		}
	}
	return fmt.Errorf("unsupported operator button choice: %q", name)
}
