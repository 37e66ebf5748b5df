// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"codeberg.org/uistrings/uistrings/cms"
	config "codeberg.org/uistrings/uistrings/configs"
	"codeberg.org/uistrings/uistrings/i18n"
)

func localesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List local catalogs and their coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return err
			}

			return runLocales(dir)
		},
	}

	cmd.Flags().String("dir", "./locales", "directory holding <locale>.yaml catalogs")

	return cmd
}

// runLocales prints, per catalog, the canonical tag and how many of the
// reference locale's keys carry a non-empty value.
func runLocales(dir string) error {
	catalogs, err := cms.LoadDir(dir)
	if err != nil {
		return err
	}

	reference := catalogs[config.Global.Basic.DefaultLocale]
	total := countKeys(reference)

	locales := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		locales = append(locales, locale)
	}

	sort.Strings(locales)

	for _, locale := range locales {
		tag := i18n.ParseLocale(locale)
		covered := countCovered(reference, catalogs[locale])

		if total > 0 {
			fmt.Printf("%-8s %-8s %3d/%3d keys (%3.0f%%)\n",
				locale, tag.String(), covered, total, float64(covered)/float64(total)*100)
		} else {
			fmt.Printf("%-8s %-8s %d keys\n", locale, tag.String(), countKeys(catalogs[locale]))
		}
	}

	return nil
}

func countKeys(m i18n.TranslationMap) int {
	n := 0

	for _, v := range m {
		switch nested := v.(type) {
		case string:
			n++
		case map[string]any:
			n += countKeys(i18n.TranslationMap(nested))
		}
	}

	return n
}

// countCovered counts reference keys that carry a non-empty string in
// target, walking one level of nesting.
func countCovered(reference, target i18n.TranslationMap) int {
	n := 0

	for k, v := range reference {
		switch nested := v.(type) {
		case string:
			if s, ok := target[k].(string); ok && s != "" {
				n++
			}
		case map[string]any:
			if t, ok := target[k].(map[string]any); ok {
				n += countCovered(i18n.TranslationMap(nested), i18n.TranslationMap(t))
			}
		}
	}

	return n
}
