// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"sort"

	"golang.org/x/text/language"
)

// BaseLocale is the default locale used when no specific locale is set.
const BaseLocale = "en"

// baseTag is the canonical tag for BaseLocale.
var baseTag = language.Make(BaseLocale)

// ParseLocale converts a locale identifier such as "en", "nl" or "pt-BR"
// to a language tag. Underscores are accepted in place of hyphens. An
// unparseable identifier falls back to the tag for BaseLocale.
func ParseLocale(locale string) language.Tag {
	t, err := language.Parse(replaceUnderscores(locale))
	if err != nil {
		return baseTag
	}

	return t
}

// NewMatcher builds a language matcher over locales with BaseLocale as
// the default fallback. Invalid identifiers are skipped.
func NewMatcher(locales []string) language.Matcher {
	all := []language.Tag{baseTag}

	var rest []language.Tag

	for _, l := range locales {
		t, err := language.Parse(replaceUnderscores(l))
		if err != nil || t == baseTag {
			continue
		}

		rest = append(rest, t)
	}

	// Sort by canonical tag string for a stable matcher order.
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	return language.NewMatcher(append(all, rest...))
}

func replaceUnderscores(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '_' {
			b[i] = '-'
		}
	}

	return string(b)
}
