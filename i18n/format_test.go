// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		style DateStyle
		want  string
	}{
		{DateFull, "Friday, 7 March 2025"},
		{DateLong, "7 March 2025"},
		{DateMedium, "7 Mar 2025"},
		{DateShort, "07/03/2025"},
		{DateStyle("bogus"), "7 Mar 2025"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.style), func(t *testing.T) {
			t.Parallel()

			if got := FormatDate(date, language.English, tt.style); got != tt.want {
				t.Errorf("FormatDate(%s) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  float64
		locale string
		opts   NumberOptions
		want   string
	}{
		{
			name:   "English grouping",
			value:  1234.56,
			locale: "en",
			want:   "1,234.56",
		},
		{
			name:   "Dutch grouping",
			value:  1234.56,
			locale: "nl",
			want:   "1.234,56",
		},
		{
			name:   "Min fraction digits",
			value:  5,
			locale: "en",
			opts:   NumberOptions{MinFractionDigits: 2, MaxFractionDigits: 2},
			want:   "5.00",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatNumber(tt.value, ParseLocale(tt.locale), tt.opts)
			if got != tt.want {
				t.Errorf("FormatNumber(%v, %s) = %q, want %q", tt.value, tt.locale, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		amount     float64
		locale     string
		code       string
		wantSymbol string
		wantDigits string
	}{
		{
			name:       "Euro by default",
			amount:     99.5,
			locale:     "en",
			code:       "",
			wantSymbol: "€",
			wantDigits: "99.50",
		},
		{
			name:       "Dollars",
			amount:     12,
			locale:     "en",
			code:       "USD",
			wantSymbol: "$",
			wantDigits: "12.00",
		},
		{
			name:       "Unknown code falls back to euro",
			amount:     1,
			locale:     "en",
			code:       "NOPE",
			wantSymbol: "€",
			wantDigits: "1.00",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatCurrency(tt.amount, ParseLocale(tt.locale), tt.code)

			if !strings.Contains(got, tt.wantSymbol) {
				t.Errorf("FormatCurrency = %q, missing symbol %q", got, tt.wantSymbol)
			}

			if !strings.Contains(got, tt.wantDigits) {
				t.Errorf("FormatCurrency = %q, missing amount %q", got, tt.wantDigits)
			}
		})
	}
}
