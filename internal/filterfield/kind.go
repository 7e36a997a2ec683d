// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filterfield

import (
	"fmt"
	"strings"
)

// Kind is the input type of a filter field.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindChoice Kind = "choice"
)

// kindAliases accepts the widget type names used by older grid definitions.
var kindAliases = map[string]Kind{
	"text":        KindText,
	"textfield":   KindText,
	"number":      KindNumber,
	"numberfield": KindNumber,
	"date":        KindDate,
	"datefield":   KindDate,
	"choice":      KindChoice,
	"combobox":    KindChoice,
}

// ParseKind resolves a configured kind name. An empty name means text.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindText, nil
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrConfig, s)
}

// NeedsOperatorButton is true for kinds whose comparison is not implied by the
// input itself.
func (k Kind) NeedsOperatorButton() bool {
	return k == KindNumber || k == KindDate
}

// DefaultOperator is the operator used when neither the field nor the column
// config names one.
func (k Kind) DefaultOperator() string {
	switch k {
	case KindText:
		return OpLike
	case KindChoice:
		return OpIn
	default:
		return OpEq
	}
}
