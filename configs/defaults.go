// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	defaultCMSTimeout = 10 * time.Second

	defaultCollectorDebounce = 2 * time.Second
)

// SetDefaults populates the configuration with default values.
func (cfg *Config) SetDefaults() {
	cfg.Basic.DefaultLocale = "en"
	cfg.Basic.DefaultContext = "General"
	cfg.Basic.CurrencyCode = "EUR"
	cfg.Basic.Locales = []string{"en"}

	cfg.CMS.Endpoint = ""
	cfg.CMS.Timeout = defaultCMSTimeout

	cfg.Collector.Debounce = defaultCollectorDebounce

	cfg.Scanner.Pattern = "src/**/*.{ts,tsx,js,jsx}"
	cfg.Scanner.DeclarationPaths = []string{
		"src/globals/strings.ts",
		"globals/strings.ts",
		"src/cms/globals/strings.ts",
		"cms/globals/strings.ts",
	}

	cfg.Development.InDevelopment = false

	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
}
