// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	writeFile(t, root, "src/pages/home.tsx", `
export function Home() {
  return <button>{t('Login Button', 'Homepage')}</button>;
}
const label = t("Sign Out");
`)
	writeFile(t, root, "src/lib/format.ts", `
const a = t('Hello %s'); // dynamic, skipped
const b = t('Welcome {name}'); // dynamic, skipped
const c = format('not a call-site');
const d = t('Checkout Total', "Checkout");
`)
	writeFile(t, root, "src/node_modules/dep/index.js", `const x = t('Vendored');`)
	writeFile(t, root, "src/readme.md", `t('Not Scanned')`)

	sites, err := Scan(filepath.Join(root, "src/**/*.{ts,tsx,js,jsx}"))
	require.NoError(t, err)

	byKey := map[string]CallSite{}
	for _, s := range sites {
		byKey[s.Key] = s
	}

	assert.Len(t, sites, 3)

	login, ok := byKey["Login Button"]
	require.True(t, ok, "Login Button not extracted")
	assert.Equal(t, "Homepage", login.Context)
	assert.Equal(t, 3, login.Line)

	signOut, ok := byKey["Sign Out"]
	require.True(t, ok, "Sign Out not extracted")
	assert.Equal(t, "General", signOut.Context)
	assert.Equal(t, 5, signOut.Line)

	total, ok := byKey["Checkout Total"]
	require.True(t, ok, "Checkout Total not extracted")
	assert.Equal(t, "Checkout", total.Context)

	assert.NotContains(t, byKey, "Vendored", "node_modules must be excluded")
	assert.NotContains(t, byKey, "Hello %s", "positional keys must be skipped")
	assert.NotContains(t, byKey, "Welcome {name}", "named keys must be skipped")
	assert.NotContains(t, byKey, "Not Scanned", "pattern must limit extensions")
}

func TestScanSkipsLongKeys(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	long := make([]byte, 0, 120)
	for i := 0; i < 120; i++ {
		long = append(long, 'x')
	}

	writeFile(t, root, "src/long.ts", "t('"+string(long)+"'); t('Short');")

	sites, err := Scan(filepath.Join(root, "src/**/*.ts"))
	require.NoError(t, err)

	require.Len(t, sites, 1)
	assert.Equal(t, "Short", sites[0].Key)
}

func TestScanMultipleCallsPerLine(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	writeFile(t, root, "src/multi.ts", `const x = [t('One'), t('Two', 'Nav')];`)

	sites, err := Scan(filepath.Join(root, "src/**/*.ts"))
	require.NoError(t, err)

	require.Len(t, sites, 2)
	assert.Equal(t, 1, sites[0].Line)
	assert.Equal(t, 1, sites[1].Line)
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	sites := []CallSite{
		{Key: "Submit", Context: "Checkout", File: "a.ts", Line: 1},
		{Key: "Submit", Context: "Checkout", File: "b.ts", Line: 9},
		{Key: "Submit", Context: "Homepage", File: "c.ts", Line: 2},
	}

	deduped := Dedupe(sites)

	require.Len(t, deduped, 2)
	assert.Equal(t, "a.ts", deduped[0].File, "first occurrence wins")
	assert.Equal(t, "Homepage", deduped[1].Context)
}
