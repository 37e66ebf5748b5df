// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
i18nscan mines source files for t() translation call-sites and generates
CMS field declarations for them.

	i18nscan scan [pattern] [--write[=FILE]]
	i18nscan locales [--dir locales]

Without --write the declarations are printed for manual pasting. With
--write they are spliced into the declarations file, either the supplied
one or the first conventional path that exists.
*/
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "codeberg.org/uistrings/uistrings/configs"
	"codeberg.org/uistrings/uistrings/core/audit"
	"codeberg.org/uistrings/uistrings/scanner"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("i18nscan failed")
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "i18nscan",
		Short:         "Keep CMS field declarations in sync with t() call-sites",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			audit.SetDefaultLogger()

			if err := config.Global.LoadConfig(); err != nil {
				return err
			}

			return audit.Configure(config.Global.Log.Level, config.Global.Log.Format)
		},
	}

	root.AddCommand(scanCmd(), localesCmd())

	return root
}

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [pattern]",
		Short: "Extract t() call-sites and generate field declarations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := config.Global.Scanner.Pattern
			if len(args) > 0 {
				pattern = args[0]
			}

			writeTarget, err := cmd.Flags().GetString("write")
			if err != nil {
				return err
			}

			return runScan(pattern, cmd.Flags().Changed("write"), writeTarget)
		},
	}

	// --write without a value probes the conventional declaration paths;
	// an explicit target must be attached with --write=FILE.
	cmd.Flags().StringP("write", "w", "", "splice declarations into FILE (default: probe conventional paths)")
	cmd.Flags().Lookup("write").NoOptDefVal = "-"

	return cmd
}

// runScan drives one scan. A splice failure is a soft failure: the error
// goes to stderr, the declarations go to stdout as a manual fallback, and
// the exit code stays 0.
func runScan(pattern string, write bool, writeTarget string) error {
	sites, err := scanner.Scan(pattern)
	if err != nil {
		return fmt.Errorf("scanning %q: %w", pattern, err)
	}

	deduped := scanner.Dedupe(sites)

	printSummary(deduped)

	if !write {
		fmt.Println(scanner.Generate(deduped, scanner.GenerateOptions{}))

		return nil
	}

	target, err := resolveTarget(writeTarget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18nscan: %v\n", err)
		fmt.Println(scanner.Generate(deduped, scanner.GenerateOptions{}))

		return nil
	}

	existing, err := os.ReadFile(target) // #nosec G304 -- target is user-supplied by design
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18nscan: reading %s: %v\n", target, err)
		fmt.Println(scanner.Generate(deduped, scanner.GenerateOptions{}))

		return nil
	}

	declarations := scanner.Generate(deduped, scanner.GenerateOptions{
		ExistingSource: string(existing),
	})
	if declarations == "" {
		fmt.Printf("%s is already up to date\n", target)

		return nil
	}

	if err := scanner.Splice(target, declarations); err != nil {
		fmt.Fprintf(os.Stderr,
			"i18nscan: %v\nAdd the declarations below to %s by hand:\n", err, target)
		fmt.Println(declarations)

		return nil
	}

	fmt.Printf("Wrote new field declarations to %s\n", target)

	return nil
}

func printSummary(sites []scanner.CallSite) {
	counts := scanner.CountByContext(sites)

	contexts := make([]string, 0, len(counts))
	for context := range counts {
		contexts = append(contexts, context)
	}

	sort.Strings(contexts)

	fmt.Printf("Found %d distinct translation keys\n", len(sites))

	for _, context := range contexts {
		fmt.Printf("  %-20s %d\n", context, counts[context])
	}
}

// resolveTarget picks the declarations file: the explicit path when one
// was given to --write, otherwise the first configured conventional path
// that exists.
func resolveTarget(writeTarget string) (string, error) {
	if writeTarget != "" && writeTarget != "-" {
		return writeTarget, nil
	}

	for _, path := range config.Global.Scanner.DeclarationPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no declarations file found among %v", config.Global.Scanner.DeclarationPaths)
}
