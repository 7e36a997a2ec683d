// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "json", "yaml"} {
		assert.NoError(t, FlagValidators(v, OutputValidator), v)
	}
	for _, v := range []string{"raw", "xml", ""} {
		assert.Error(t, FlagValidators(v, OutputValidator), v)
	}
}

func TestNonNegativeValidator(t *testing.T) {
	assert.NoError(t, NonNegativeValidator(0))
	assert.NoError(t, NonNegativeValidator(800))
	assert.Error(t, NonNegativeValidator(-1))
	assert.NoError(t, NonNegativeValidator("not an int"))
}

func TestFlagValidatorsStopsAtFirstError(t *testing.T) {
	calls := 0
	count := func(any) error { calls++; return nil }

	assert.Error(t, FlagValidators(-5, count, NonNegativeValidator, count))
	assert.Equal(t, 1, calls)
}
