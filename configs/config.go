// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package config loads the uistrings configuration from, in increasing
// precedence, built-in defaults, a YAML file, a .env file, and
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"
)

// Global exposes the loaded configuration.
var Global Config

// Config holds the toolkit configuration.
type Config struct {
	Basic struct {
		// DefaultLocale is the BCP 47 tag used when a caller does not
		// pick one.
		DefaultLocale string `env:"UISTRINGS_DEFAULT_LOCALE,overwrite" yaml:"defaultLocale"`
		// DefaultContext groups call-sites that do not name a context.
		DefaultContext string `env:"UISTRINGS_DEFAULT_CONTEXT,overwrite" yaml:"defaultContext"`
		// CurrencyCode is the ISO 4217 code assumed by FormatCurrency.
		CurrencyCode string `env:"UISTRINGS_CURRENCY,overwrite" yaml:"currencyCode"`
		// Locales lists the locales served by the CMS global.
		Locales []string `env:"UISTRINGS_LOCALES,overwrite" yaml:"locales"`
	} `yaml:"basic"`

	CMS struct {
		// Endpoint is the URL of the CMS global serving per-locale
		// string maps. Empty disables remote fetching.
		Endpoint string        `env:"UISTRINGS_CMS_ENDPOINT,overwrite" yaml:"endpoint"`
		Timeout  time.Duration `env:"UISTRINGS_CMS_TIMEOUT,overwrite" yaml:"timeout"`
	} `yaml:"cms"`

	Collector struct {
		// Debounce is the quiet period after the last missing-key record
		// before the ledger flushes.
		Debounce time.Duration `env:"UISTRINGS_COLLECTOR_DEBOUNCE,overwrite" yaml:"debounce"`
	} `yaml:"collector"`

	Scanner struct {
		Pattern string `env:"UISTRINGS_SCAN_PATTERN,overwrite" yaml:"pattern"`
		// DeclarationPaths are the conventional locations probed by
		// `i18nscan scan --write` when no output file is supplied.
		DeclarationPaths []string `env:"UISTRINGS_DECLARATION_PATHS,overwrite" yaml:"declarationPaths"`
	} `yaml:"scanner"`

	Development struct {
		// InDevelopment gates missing-key collection; resolvers receive
		// it as an explicit flag at construction.
		InDevelopment bool `env:"UISTRINGS_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level  string `env:"UISTRINGS_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Format string `env:"UISTRINGS_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig populates cfg from defaults, then the YAML file, then .env,
// then environment variables.
//
// The config file path is taken from UISTRINGS_CONFIGFILE, falling back
// to ./config.yaml then ./config.yml; a missing file is not an error.
func (cfg *Config) LoadConfig() error {
	configFilePath := os.Getenv("UISTRINGS_CONFIGFILE")
	if configFilePath == "" {
		configFilePath = "./config.yaml"
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			if _, err := os.Stat("./config.yml"); err == nil {
				configFilePath = "./config.yml"
			}
		}
	}

	cfg.SetDefaults()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	useDotEnv()

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	return nil
}
