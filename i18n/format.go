// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DateStyle selects a date rendering style.
type DateStyle string

// Supported date styles.
const (
	DateFull   DateStyle = "full"
	DateLong   DateStyle = "long"
	DateMedium DateStyle = "medium"
	DateShort  DateStyle = "short"
)

// DefaultCurrency is the ISO 4217 code assumed when none is given.
const DefaultCurrency = "EUR"

var dateLayouts = map[DateStyle]string{
	DateFull:   "Monday, 2 January 2006",
	DateLong:   "2 January 2006",
	DateMedium: "2 Jan 2006",
	DateShort:  "02/01/2006",
}

// FormatDate renders t in the given style. An unknown style falls back to
// DateMedium. Month and weekday names are not localized.
func FormatDate(t time.Time, _ language.Tag, style DateStyle) string {
	layout, ok := dateLayouts[style]
	if !ok {
		layout = dateLayouts[DateMedium]
	}

	return t.Format(layout)
}

// NumberOptions is passed through to the underlying number formatter.
type NumberOptions struct {
	MinFractionDigits int
	MaxFractionDigits int
}

// FormatNumber renders v with the digit grouping and decimal separator of
// tag.
func FormatNumber(v float64, tag language.Tag, opts NumberOptions) string {
	options := []number.Option{}
	if opts.MinFractionDigits > 0 {
		options = append(options, number.MinFractionDigits(opts.MinFractionDigits))
	}

	if opts.MaxFractionDigits > 0 {
		options = append(options, number.MaxFractionDigits(opts.MaxFractionDigits))
	}

	return message.NewPrinter(tag).Sprint(number.Decimal(v, options...))
}

// FormatCurrency renders amount in the currency identified by code under
// tag. An empty or unknown code falls back to DefaultCurrency.
func FormatCurrency(amount float64, tag language.Tag, code string) string {
	if code == "" {
		code = DefaultCurrency
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.EUR
	}

	return message.NewPrinter(tag).Sprint(currency.Symbol(unit.Amount(amount)))
}
