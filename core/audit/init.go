// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package audit owns the process-wide logger setup.
package audit

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetDefaultLogger provides an ok log output format on startup before the
// configuration is loaded: colored console output on a TTY, JSON
// otherwise.
func SetDefaultLogger() {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		return
	}

	log.Logger = log.Output(os.Stderr)
}

// Configure applies the configured log level and format to the global
// logger.
func Configure(level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(lvl)

	if format == "json" {
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return nil
}
