// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultContext is the grouping label assumed when a lookup does not
// name one.
const DefaultContext = "General"

// TranslationMap is a per-locale mapping from normalized field
// identifiers to display strings. Values may nest one level, reached by
// dot-separated lookup paths. The map is treated as an immutable snapshot
// for the lifetime of each resolution call; resolution never mutates it.
type TranslationMap map[string]any

// Options configures a Translator.
type Options struct {
	// Locale is the BCP 47 tag used for plural rules and formatting.
	// Empty means BaseLocale.
	Locale string

	// Context is the default context label for lookups that do not pass
	// one. Empty means DefaultContext.
	Context string

	// Collector receives missing keys when CollectMissing is set. May be
	// nil.
	Collector *Collector

	// CollectMissing enables missing-key recording. This is an explicit
	// construction-time flag; callers typically wire it from their
	// development-mode configuration.
	CollectMissing bool
}

// Translator resolves keys against one TranslationMap snapshot.
//
// A Translator is safe for concurrent use: resolution is pure apart from
// the optional Collector, which is internally synchronized. Independent
// resolvers only share a ledger when configured with the same Collector.
type Translator struct {
	messages       TranslationMap
	tag            language.Tag
	context        string
	collector      *Collector
	collectMissing bool
}

// NewTranslator returns a Translator over messages. A nil messages map
// behaves as an empty one: every lookup misses and echoes its key.
func NewTranslator(messages TranslationMap, opts Options) *Translator {
	locale := opts.Locale
	if locale == "" {
		locale = BaseLocale
	}

	context := opts.Context
	if context == "" {
		context = DefaultContext
	}

	return &Translator{
		messages:       messages,
		tag:            ParseLocale(locale),
		context:        context,
		collector:      opts.Collector,
		collectMissing: opts.CollectMissing,
	}
}

// T resolves key to a display string.
//
// An optional leading string argument is the context label; the next
// argument, a slice or a map, carries interpolation variables:
//
//	tr.T("Submit")
//	tr.T("Submit", "Checkout")
//	tr.T("Hello %s", []any{"John"})
//	tr.T("Welcome {name}", "Homepage", map[string]any{"name": "John"})
//
// A missing or empty translation degrades to the raw key, which is still
// interpolated so variables embedded directly in the key substitute. T
// never fails.
func (tr *Translator) T(key string, args ...any) string {
	context := tr.context

	rest := args
	if len(rest) > 0 {
		if s, ok := rest[0].(string); ok {
			context = s
			rest = rest[1:]
		}
	}

	var vars any
	if len(rest) > 0 {
		vars = rest[0]
	}

	if value, ok := tr.messages.lookup(key); ok {
		return Interpolate(value, vars, tr.tag)
	}

	if tr.collectMissing && tr.collector != nil {
		tr.collector.Record(key, context)
	}

	return Interpolate(key, vars, tr.tag)
}

// lookup walks the map one dot-separated segment at a time, normalizing
// each segment, and reports the resolved value when it is a non-empty
// string.
func (m TranslationMap) lookup(key string) (string, bool) {
	var current any = map[string]any(m)

	for _, segment := range strings.Split(key, ".") {
		node, ok := asMap(current)
		if !ok {
			return "", false
		}

		current, ok = node[Normalize(segment)]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case TranslationMap:
		return m, true
	default:
		return nil, false
	}
}
