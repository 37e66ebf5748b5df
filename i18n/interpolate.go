// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Positional carries interpolation values consumed in order by
// sprintf-style placeholders.
type Positional []any

// Named carries interpolation values substituted by name into
// brace-delimited placeholders.
type Named map[string]any

// pluralFormRe matches one `word {content}` form definition inside a
// plural expression.
var pluralFormRe = regexp.MustCompile(`(\w+)\s*\{([^}]*)\}`)

// Interpolate fills template with the given variables under the given
// locale tag and returns the display string.
//
// The dialect is selected by the shape of args: a slice selects the
// positional (sprintf) dialect, a map selects the named (ICU-style)
// dialect. A nil args is treated as an empty named mapping.
//
// Interpolate never fails: exhausted or undefined placeholders are left
// in the output unchanged.
func Interpolate(template string, args any, tag language.Tag) string {
	switch v := args.(type) {
	case nil:
		return interpolateNamed(template, nil, tag)
	case Positional:
		return interpolatePositional(template, v)
	case []any:
		return interpolatePositional(template, v)
	case Named:
		return interpolateNamed(template, v, tag)
	case map[string]any:
		return interpolateNamed(template, v, tag)
	default:
		return interpolateNamed(template, nil, tag)
	}
}

// interpolatePositional substitutes %s, %d, %i, %f and %u placeholders
// left to right. All specifiers share one consumption counter; a
// placeholder with no remaining value is kept verbatim. Unrecognized
// specifier letters are kept verbatim and consume nothing.
func interpolatePositional(template string, values []any) string {
	var b strings.Builder

	next := 0

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}

		spec := template[i+1]

		switch spec {
		case 's', 'd', 'i', 'f', 'u':
			if next >= len(values) {
				// Out of values, keep the placeholder.
				b.WriteByte(c)
				continue
			}

			b.WriteString(stringifySpec(spec, values[next]))

			next++
			i++
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// stringifySpec renders one positional value. %d and %i truncate toward
// zero; %f and %u keep the numeric value as-is; %s stringifies directly.
func stringifySpec(spec byte, v any) string {
	if spec == 's' {
		return stringify(v)
	}

	f, ok := toFloat(v)
	if !ok {
		return stringify(v)
	}

	if spec == 'd' || spec == 'i' {
		f = math.Trunc(f)
	}

	return formatFloat(f)
}

// interpolateNamed substitutes brace-delimited expressions. Expressions
// are found with a depth counter so that plural form bodies, which
// themselves contain braces, stay inside one expression.
func interpolateNamed(template string, vars map[string]any, tag language.Tag) string {
	var b strings.Builder

	runes := []rune(template)
	n := len(runes)

	for i := 0; i < n; {
		if runes[i] != '{' {
			b.WriteRune(runes[i])
			i++

			continue
		}

		depth := 1
		j := i + 1

		for j < n && depth > 0 {
			switch runes[j] {
			case '{':
				depth++
			case '}':
				depth--
			}
			j++
		}

		if depth != 0 {
			// Unclosed brace, keep the rest verbatim.
			b.WriteString(string(runes[i:]))

			break
		}

		expr := string(runes[i:j])
		inner := string(runes[i+1 : j-1])

		b.WriteString(evalExpression(expr, inner, vars, tag))

		i = j
	}

	return b.String()
}

// evalExpression resolves one {...} expression. expr is the full
// expression including braces and is the fallback for anything
// unsupported or unresolved.
func evalExpression(expr, inner string, vars map[string]any, tag language.Tag) string {
	if !strings.Contains(inner, ",") {
		name := strings.TrimSpace(inner)

		v, ok := vars[name]
		if !ok {
			return expr
		}

		return stringify(v)
	}

	parts := strings.SplitN(inner, ",", 3)
	if strings.TrimSpace(parts[1]) != "plural" {
		// select, selectordinal and friends are unsupported.
		return expr
	}

	v, ok := vars[strings.TrimSpace(parts[0])]
	if !ok {
		return expr
	}

	count, ok := toFloat(v)
	if !ok {
		return expr
	}

	forms := ""
	if len(parts) == 3 {
		forms = parts[2]
	}

	return evalPlural(forms, count, tag)
}

// evalPlural picks the plural form matching the CLDR cardinal category of
// count under tag, falling back to the `other` form, falling back to the
// literal forms text.
func evalPlural(forms string, count float64, tag language.Tag) string {
	category := pluralCategory(count, tag)

	var other string

	hasOther := false

	for _, m := range pluralFormRe.FindAllStringSubmatch(forms, -1) {
		switch m[1] {
		case category:
			return strings.ReplaceAll(m[2], "#", formatFloat(count))
		case "other":
			other = m[2]
			hasOther = true
		}
	}

	if hasOther {
		return strings.ReplaceAll(other, "#", formatFloat(count))
	}

	return strings.TrimSpace(forms)
}

// stringify renders an arbitrary variable value for display.
func stringify(v any) string {
	if f, ok := toFloat(v); ok {
		return formatFloat(f)
	}

	return fmt.Sprint(v)
}

// formatFloat renders f without an exponent and without trailing zeros,
// so whole numbers print as integers.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// toFloat reports v as a float64 when it carries a numeric type.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
