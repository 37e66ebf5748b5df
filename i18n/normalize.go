// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"strings"
	"unicode"
)

// Normalize converts a free-text label into a camelCase field identifier.
//
// Every character that is not alphanumeric or whitespace is stripped, the
// remainder is split on whitespace runs, the first token starts lower-case
// and each subsequent token starts upper-case. Tokens are concatenated
// without a separator. A token that already contains lower-case letters
// keeps its interior casing, which makes Normalize idempotent: an
// already-normalized identifier such as "loginButton" passes through
// unchanged.
//
// Normalize is total, deterministic and locale-independent. The generator
// and the resolver must share this exact function so that field names
// written by `i18nscan` are found again at lookup time.
func Normalize(label string) string {
	var cleaned strings.Builder

	for _, r := range label {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			cleaned.WriteRune(r)
		}
	}

	tokens := strings.Fields(cleaned.String())
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder

	for i, token := range tokens {
		if !hasLower(token) {
			token = strings.ToLower(token)
		}

		r := []rune(token)
		if i == 0 {
			r[0] = unicode.ToLower(r[0])
		} else {
			r[0] = unicode.ToUpper(r[0])
		}

		b.WriteString(string(r))
	}

	return b.String()
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}
