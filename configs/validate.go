// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

var (
	errNoLocales      = errors.New("at least one locale must be configured")
	errBadDebounce    = errors.New("collector debounce must be positive")
	errBadLogFormat   = errors.New(`log format must be "console" or "json"`)
	errBadCMSEndpoint = errors.New("cms endpoint must be an http(s) URL")
)

func (cfg *Config) validate() error {
	if len(cfg.Basic.Locales) == 0 {
		return errNoLocales
	}

	if _, err := parseLocale(cfg.Basic.DefaultLocale); err != nil {
		return fmt.Errorf("invalid default locale %q: %w", cfg.Basic.DefaultLocale, err)
	}

	for _, l := range cfg.Basic.Locales {
		if _, err := parseLocale(l); err != nil {
			return fmt.Errorf("invalid locale %q: %w", l, err)
		}
	}

	if cfg.Collector.Debounce <= 0 {
		return errBadDebounce
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return errBadLogFormat
	}

	if e := cfg.CMS.Endpoint; e != "" && !hasHTTPScheme(e) {
		return fmt.Errorf("%w: %q", errBadCMSEndpoint, e)
	}

	return nil
}

// parseLocale accepts underscores in place of hyphens, matching the
// i18n package.
func parseLocale(s string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(s, "_", "-"))
}

func hasHTTPScheme(s string) bool {
	return len(s) > 7 && (s[:7] == "http://" || (len(s) > 8 && s[:8] == "https://"))
}
