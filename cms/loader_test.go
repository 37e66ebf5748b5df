// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "en.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
loginButton: Log in
forms:
  submit: Send it
`), 0o644))

	messages, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Log in", messages["loginButton"])

	forms, ok := messages["forms"].(map[string]any)
	require.True(t, ok, "nested mapping expected")
	assert.Equal(t, "Send it", forms["submit"])
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(": not yaml : ["), 0o644))

	_, err = LoadFile(bad)
	require.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("greeting: Hello\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pt-BR.yml"), []byte("greeting: Olá\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	catalogs, err := LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, catalogs, 2)
	assert.Equal(t, "Hello", catalogs["en"]["greeting"])
	assert.Equal(t, "Olá", catalogs["pt-BR"]["greeting"])
}
