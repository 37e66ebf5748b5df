// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cms

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"codeberg.org/uistrings/uistrings/i18n"
)

// LoadFile reads a local YAML catalog into a translation map. The file
// holds a mapping from field identifier to display string, optionally
// nested one level:
//
//	loginButton: Log in
//	forms:
//	  submit: Submit
func LoadFile(path string) (i18n.TranslationMap, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- Only loading a catalog file
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return i18n.TranslationMap(raw), nil
}

// LoadDir reads every <locale>.yaml or <locale>.yml catalog in dir and
// returns the maps keyed by locale. Hyphens and underscores are both
// accepted in locale filenames, for example "pt-BR.yaml" or "pt_BR.yaml".
func LoadDir(dir string) (map[string]i18n.TranslationMap, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	out := make(map[string]i18n.TranslationMap)

	for _, entry := range entries {
		name := entry.Name()

		ext := filepath.Ext(name)
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		messages, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		out[strings.TrimSuffix(name, ext)] = messages
	}

	return out, nil
}
