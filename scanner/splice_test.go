// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declarationsFile = `import type { Field } from 'cms';

export const translationFields: Field[] = [
  {
    label: 'Homepage',
    type: 'collapsible',
    fields: [],
  },
];

const unrelated = { nested: [1, [2, 3]] };
`

func TestSpliceText(t *testing.T) {
	t.Parallel()

	inserted, err := SpliceText(declarationsFile, "{\n  label: 'Checkout',\n},\n")
	require.NoError(t, err)

	assert.Contains(t, inserted, "label: 'Checkout',")

	// The insertion lands inside the exported array, before its closing
	// bracket and before the unrelated trailer.
	idxInsert := indexOf(t, inserted, "label: 'Checkout'")
	idxClose := indexOf(t, inserted, "];")
	idxTrailer := indexOf(t, inserted, "const unrelated")

	assert.Less(t, idxInsert, idxClose)
	assert.Less(t, idxClose, idxTrailer)
}

func TestSpliceTextNestedBrackets(t *testing.T) {
	t.Parallel()

	source := "export const fields = [\n  ['a', ['b']],\n];\nconst tail = 1;\n"

	out, err := SpliceText(source, "'new',\n")
	require.NoError(t, err)

	assert.Equal(t, "export const fields = [\n  ['a', ['b']],\n  'new',\n];\nconst tail = 1;\n", out)
}

func TestSpliceTextNoExportedArray(t *testing.T) {
	t.Parallel()

	_, err := SpliceText("const x = [1, 2];\n", "'new',\n")
	require.ErrorIs(t, err, ErrNoExportedArray)
}

func TestSpliceTextUnbalanced(t *testing.T) {
	t.Parallel()

	_, err := SpliceText("export const fields = [1, 2\n", "'new',\n")
	require.ErrorIs(t, err, ErrUnbalancedBrackets)
}

func TestSpliceLeavesFileUntouchedOnFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "strings.ts")
	original := []byte("const noExport = [1, 2];\n")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	err := Splice(path, "'new',\n")
	require.ErrorIs(t, err, ErrNoExportedArray)

	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, after, "file must stay byte-identical on failure")
}

func TestSpliceWritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "strings.ts")
	require.NoError(t, os.WriteFile(path, []byte(declarationsFile), 0o644))

	require.NoError(t, Splice(path, "{\n  label: 'Checkout',\n},\n"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(after), "label: 'Checkout',")
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()

	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "%q not found", needle)

	return idx
}
