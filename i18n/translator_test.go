// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"testing"
	"time"
)

func TestTranslatorLookup(t *testing.T) {
	t.Parallel()

	messages := TranslationMap{
		"loginButton": "Log in",
		"greeting":    "Hello {name}",
		"inbox":       "You have %d new messages",
		"emptyValue":  "",
		"forms": map[string]any{
			"submit": "Send it",
		},
	}

	tr := NewTranslator(messages, Options{Locale: "en"})

	tests := []struct {
		name string
		call func() string
		want string
	}{
		{
			name: "Label resolves through normalization",
			call: func() string { return tr.T("Login Button") },
			want: "Log in",
		},
		{
			name: "Lowercase label resolves",
			call: func() string { return tr.T("login button") },
			want: "Log in",
		},
		{
			name: "Normalized identifier resolves",
			call: func() string { return tr.T("loginButton") },
			want: "Log in",
		},
		{
			name: "Dotted path walks nesting",
			call: func() string { return tr.T("forms.submit") },
			want: "Send it",
		},
		{
			name: "Dotted path with labels",
			call: func() string { return tr.T("Forms.Submit") },
			want: "Send it",
		},
		{
			name: "Named interpolation on resolved value",
			call: func() string { return tr.T("Greeting", map[string]any{"name": "Ann"}) },
			want: "Hello Ann",
		},
		{
			name: "Positional interpolation on resolved value",
			call: func() string { return tr.T("Inbox", []any{4}) },
			want: "You have 4 new messages",
		},
		{
			name: "Context argument is skipped over",
			call: func() string { return tr.T("Greeting", "Homepage", map[string]any{"name": "Ann"}) },
			want: "Hello Ann",
		},
		{
			name: "Missing key echoes the key",
			call: func() string { return tr.T("Submit") },
			want: "Submit",
		},
		{
			name: "Empty value counts as missing",
			call: func() string { return tr.T("Empty Value") },
			want: "Empty Value",
		},
		{
			name: "Missing key still interpolates",
			call: func() string { return tr.T("Hello {name}", map[string]any{"name": "Ann"}) },
			want: "Hello Ann",
		},
		{
			name: "Partial dotted path misses",
			call: func() string { return tr.T("forms.submit.deep") },
			want: "forms.submit.deep",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.call(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranslatorEmptyMap(t *testing.T) {
	t.Parallel()

	tr := NewTranslator(nil, Options{})

	if got := tr.T("Submit"); got != "Submit" {
		t.Errorf(`T("Submit") on empty map = %q, want "Submit"`, got)
	}
}

func TestTranslatorMissRecording(t *testing.T) {
	t.Parallel()

	collector := NewCollector(time.Hour, func(string, int) {})

	tr := NewTranslator(TranslationMap{"known": "value"}, Options{
		Locale:         "en",
		Collector:      collector,
		CollectMissing: true,
	})

	tr.T("known")
	tr.T("Missing One")
	tr.T("Missing One", "Checkout")
	tr.T("Missing Two", "Checkout")

	collector.Stop()

	entries := collector.snapshot()

	if len(entries) != 2 {
		t.Fatalf("ledger has %d keys, want 2: %v", len(entries), entries)
	}

	if got := entries["Missing One"]; len(got) != 2 {
		t.Errorf("Missing One contexts = %v, want General and Checkout", got)
	}

	if got := entries["Missing Two"]; len(got) != 1 {
		t.Errorf("Missing Two contexts = %v, want Checkout only", got)
	}
}

func TestTranslatorMissRecordingDisabled(t *testing.T) {
	t.Parallel()

	collector := NewCollector(time.Hour, func(string, int) {})

	tr := NewTranslator(nil, Options{Collector: collector})

	tr.T("Missing")

	collector.Stop()

	if entries := collector.snapshot(); len(entries) != 0 {
		t.Errorf("ledger should stay empty when collection is disabled, got %v", entries)
	}
}
