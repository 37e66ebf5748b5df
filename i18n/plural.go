// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// pluralCategory maps count to its CLDR cardinal category name under tag:
// one of "zero", "one", "two", "few", "many" or "other".
func pluralCategory(count float64, tag language.Tag) string {
	i, v, f := pluralOperands(count)

	// Trailing zeros are already stripped by pluralOperands, so the
	// with/without-trailing-zero operand pairs coincide.
	form := plural.Cardinal.MatchPlural(tag, i, v, v, f, f)

	switch form {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

// pluralOperands derives the CLDR operands from count: the integer digit
// value, the count of visible fraction digits, and the fraction digit
// value.
func pluralOperands(count float64) (i, v, f int) {
	s := strconv.FormatFloat(math.Abs(count), 'f', -1, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")

	i, _ = strconv.Atoi(intPart)
	if fracPart != "" {
		v = len(fracPart)
		f, _ = strconv.Atoi(fracPart)
	}

	return i, v, f
}
