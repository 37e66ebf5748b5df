// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/natefinch/atomic"
)

var (
	// ErrNoExportedArray is reported when the declarations file holds no
	// recognizable `export const <name> = [...]` array literal.
	ErrNoExportedArray = errors.New("no exported array literal found")

	// ErrUnbalancedBrackets is reported when the exported array's opening
	// bracket has no matching close bracket.
	ErrUnbalancedBrackets = errors.New("no matching closing bracket for exported array")
)

// exportedArrayRe finds the head of the first exported array declaration,
// with or without a type annotation.
var exportedArrayRe = regexp.MustCompile(`export\s+const\s+\w+\s*(?::[^=\n]*)?=\s*\[`)

// Splice inserts declarations immediately before the closing bracket of
// the first exported array literal in the file at path, and writes the
// result back atomically. The bracket scan counts raw bracket depth only;
// string literals containing unbalanced brackets will confuse it.
//
// On any failure the file is left byte-identical and a typed error is
// returned for manual remediation.
func Splice(path, declarations string) error {
	source, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return fmt.Errorf("reading declarations file: %w", err)
	}

	spliced, err := SpliceText(string(source), declarations)
	if err != nil {
		return fmt.Errorf("declarations file %s: %w", path, err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader([]byte(spliced))); err != nil {
		return fmt.Errorf("writing declarations file: %w", err)
	}

	return nil
}

// SpliceText performs the insertion on in-memory source and returns the
// new text.
func SpliceText(source, declarations string) (string, error) {
	loc := exportedArrayRe.FindStringIndex(source)
	if loc == nil {
		return "", ErrNoExportedArray
	}

	// loc[1]-1 is the opening bracket itself.
	open := loc[1] - 1

	depth := 0
	closing := -1

	for i := open; i < len(source); i++ {
		switch source[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				closing = i
			}
		}

		if closing >= 0 {
			break
		}
	}

	if closing < 0 {
		return "", ErrUnbalancedBrackets
	}

	insert := indentBlock(declarations, "  ")

	return source[:closing] + insert + source[closing:], nil
}

// indentBlock prefixes every non-empty line with indent so inserted
// declarations line up with the array's elements.
func indentBlock(block, indent string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
