// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package scanner

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"codeberg.org/uistrings/uistrings/i18n"
)

// FieldDeclaration is one generated CMS field.
type FieldDeclaration struct {
	Name       string // normalized key
	Label      string // original key
	GroupLabel string // context
}

// GenerateOptions tunes Generate.
type GenerateOptions struct {
	// ExistingSource is the text of an existing declarations file. When
	// set, fields whose normalized name already appears there are
	// skipped, and a whole group is skipped when its label already
	// appears, even if it would gain new fields. The group-level skip is
	// a known limitation kept for predictable diffs.
	ExistingSource string
}

var (
	existingNameRe = regexp.MustCompile(`name:\s*(?:'([^']*)'|"([^"]*)")`)

	// A collapsible group is recognized by its type declaration with the
	// label literal adjacent in either order.
	existingGroupRes = []*regexp.Regexp{
		regexp.MustCompile(`type:\s*(?:'collapsible'|"collapsible")[^{}]*?label:\s*(?:'([^']*)'|"([^"]*)")`),
		regexp.MustCompile(`label:\s*(?:'([^']*)'|"([^"]*)")[^{}]*?type:\s*(?:'collapsible'|"collapsible")`),
	}
)

// Generate renders deduplicated call-sites as declaration source text:
// one collapsible group per context, one text field per distinct key,
// field names assigned through the shared key normalizer.
//
// Groups and fields are emitted in sorted order so output is
// deterministic regardless of scan order.
func Generate(sites []CallSite, opts GenerateOptions) string {
	existingNames := extractExistingNames(opts.ExistingSource)
	existingGroups := extractExistingGroups(opts.ExistingSource)

	grouped := make(map[string][]FieldDeclaration)

	for _, s := range Dedupe(sites) {
		name := i18n.Normalize(s.Key)
		if _, ok := existingNames[name]; ok {
			continue
		}

		grouped[s.Context] = append(grouped[s.Context], FieldDeclaration{
			Name:       name,
			Label:      s.Key,
			GroupLabel: s.Context,
		})
	}

	contexts := make([]string, 0, len(grouped))

	for context := range grouped {
		if _, ok := existingGroups[context]; ok {
			continue
		}

		contexts = append(contexts, context)
	}

	sort.Strings(contexts)

	var b strings.Builder

	for _, context := range contexts {
		fields := grouped[context]
		sort.Slice(fields, func(i, j int) bool { return fields[i].Label < fields[j].Label })

		fmt.Fprintf(&b, "{\n")
		fmt.Fprintf(&b, "  label: '%s',\n", escapeSingleQuotes(context))
		fmt.Fprintf(&b, "  type: 'collapsible',\n")
		fmt.Fprintf(&b, "  fields: [\n")

		for _, f := range fields {
			fmt.Fprintf(&b, "    {\n")
			fmt.Fprintf(&b, "      name: '%s',\n", f.Name)
			fmt.Fprintf(&b, "      type: 'text',\n")
			fmt.Fprintf(&b, "      label: '%s',\n", escapeSingleQuotes(f.Label))
			fmt.Fprintf(&b, "      localized: true,\n")
			fmt.Fprintf(&b, "    },\n")
		}

		fmt.Fprintf(&b, "  ],\n")
		fmt.Fprintf(&b, "},\n")
	}

	return b.String()
}

// CountByContext reports how many distinct keys each context holds after
// deduplication, for the CLI summary.
func CountByContext(sites []CallSite) map[string]int {
	counts := make(map[string]int)
	for _, s := range Dedupe(sites) {
		counts[s.Context]++
	}

	return counts
}

func extractExistingNames(source string) map[string]struct{} {
	out := make(map[string]struct{})

	for _, m := range existingNameRe.FindAllStringSubmatch(source, -1) {
		out[firstNonEmpty(m[1], m[2])] = struct{}{}
	}

	return out
}

func extractExistingGroups(source string) map[string]struct{} {
	out := make(map[string]struct{})

	for _, re := range existingGroupRes {
		for _, m := range re.FindAllStringSubmatch(source, -1) {
			out[firstNonEmpty(m[1], m[2])] = struct{}{}
		}
	}

	return out
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
