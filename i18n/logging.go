// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger used by package i18n. It defaults to the global
// logger tagged with the subsystem name; hosts may replace it.
var Logger = log.With().Str("sys", "i18n").Logger()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	Logger = l
}
