// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package scanner mines source files for translation call-sites and turns
// them into CMS field declarations.
//
// Scanning is regex-based and therefore a best-effort heuristic: it
// cannot tell a real call from a shadowed identifier, a concatenated key
// or commented-out code. It exists to bootstrap field definitions, not to
// prove anything about the program.
package scanner

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"

	"codeberg.org/uistrings/uistrings/i18n"
)

// DefaultPattern matches the source files scanned when no pattern is
// given.
const DefaultPattern = "src/**/*.{ts,tsx,js,jsx}"

// DefaultExcludes are always skipped regardless of the pattern.
var DefaultExcludes = []string{
	"**/node_modules/**",
	"**/dist/**",
	"**/.next/**",
}

// maxKeyLength is the longest key considered a realistic literal UI
// string.
const maxKeyLength = 100

// callSiteRe matches t('Key') and t('Key', 'Context') with either quote
// style. The leading boundary keeps identifiers like "format(" out.
var callSiteRe = regexp.MustCompile(
	`\bt\(\s*(?:'([^'\\]*)'|"([^"\\]*)")\s*(?:,\s*(?:'([^'\\]*)'|"([^"\\]*)"))?`)

// CallSite is one extracted translation call. It is never mutated after
// creation.
type CallSite struct {
	Key     string
	Context string
	File    string
	Line    int // 1-based
}

// Scan walks the files matched by pattern, excluding DefaultExcludes, and
// extracts translation call-sites line by line. Keys containing
// interpolation markers ({ or %) or longer than 100 characters are
// skipped: such keys are either already dynamic or not realistic literal
// UI strings.
func Scan(pattern string) ([]CallSite, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}

	var sites []CallSite

	for _, path := range matches {
		if excluded(path) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		fileSites, err := scanFile(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Skipping unreadable file")

			continue
		}

		sites = append(sites, fileSites...)
	}

	return sites, nil
}

// Dedupe removes call-sites repeating an already-seen (key, context)
// pair, keeping the first occurrence.
func Dedupe(sites []CallSite) []CallSite {
	type pair struct{ key, context string }

	seen := make(map[pair]struct{}, len(sites))
	out := make([]CallSite, 0, len(sites))

	for _, s := range sites {
		p := pair{s.Key, s.Context}
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}

		out = append(out, s)
	}

	return out
}

func scanFile(path string) ([]CallSite, error) {
	f, err := os.Open(path) // #nosec G304 -- paths come from the user's glob
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sites []CallSite

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++

		for _, m := range callSiteRe.FindAllStringSubmatch(sc.Text(), -1) {
			key := firstNonEmpty(m[1], m[2])
			if key == "" || len(key) > maxKeyLength {
				continue
			}

			if strings.ContainsAny(key, "{%") {
				continue
			}

			context := firstNonEmpty(m[3], m[4])
			if context == "" {
				context = i18n.DefaultContext
			}

			sites = append(sites, CallSite{
				Key:     key,
				Context: context,
				File:    filepath.ToSlash(path),
				Line:    line,
			})
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}

func excluded(path string) bool {
	slashed := filepath.ToSlash(path)

	for _, pattern := range DefaultExcludes {
		if doublestar.MatchUnvalidated(pattern, slashed) {
			return true
		}
	}

	return false
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}
