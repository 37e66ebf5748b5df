// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n resolves and formats localized UI strings supplied by a
CMS-managed global.

# Quick start

Use the original English UI text as the lookup key; do not invent keys.

	tr := i18n.NewTranslator(messages, i18n.Options{Locale: "en"})

	tr.T("Login Button")
	tr.T("Hello %s, you have %d new messages", []any{"John", 5})
	tr.T("Welcome {name}", map[string]any{"name": "John"})
	tr.T("Forms", "Checkout") // disambiguation via context

Keys are normalized to camelCase field identifiers before lookup, so a
value stored under "loginButton" is found by "Login Button" or
"login button". Dotted keys walk one level of nesting: "forms.submit"
resolves through a nested mapping.

# Missing translations

A missing or empty translation returns the key itself, with variable
interpolation still applied. When a Collector is attached and missing-key
collection is enabled, misses are accumulated and flushed after a quiet
period as a ready-to-paste field-declaration snippet.

# Interpolation

Two dialects are supported and selected by the shape of the variables:
an ordered slice triggers positional (sprintf-style) placeholders
(%s %d %i %f %u), a map triggers named placeholders ({name}) with
CLDR cardinal plural branching:

	{count, plural, one {# item} other {# items}}

Interpolation never fails; undefined variables and unmatched plural
categories leave the placeholder text intact.

# Formatters

FormatDate, FormatNumber and FormatCurrency are thin locale-aware
wrappers, independent of the resolver.
*/
package i18n
