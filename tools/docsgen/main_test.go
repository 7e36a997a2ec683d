// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Setenv("GRIDFILTER_CFG_FILE", "")
	docs := t.TempDir()
	require.NoError(t, os.CopyFS(docs, os.DirFS("testdata")))

	require.NoError(t, generate(docs))

	for _, id := range []string{"columns", "query", "view"} {
		assert.FileExists(t, filepath.Join(docs, "commands", id+".md"))
		assert.FileExists(t, filepath.Join(docs, "tldr", "gridfilter-"+id+".md"))
	}
	assert.NoFileExists(t, filepath.Join(docs, "commands", "completion.md"))

	md, err := os.ReadFile(filepath.Join(docs, "commands", "query.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# gridfilter query")
	assert.Contains(t, string(md), "`--input, -i`")
	assert.Contains(t, string(md), "Adults only")
	assert.Contains(t, string(md), "same filter field the view uses")

	tldr, err := os.ReadFile(filepath.Join(docs, "tldr", "gridfilter-view.md"))
	require.NoError(t, err)
	assert.Contains(t, string(tldr), "`gridfilter view people.yaml -d 300`")
}

func TestLoadExtrasMissing(t *testing.T) {
	extras, err := loadExtras(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, extras.Subcommands)
}
