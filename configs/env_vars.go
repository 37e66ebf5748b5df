// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	errExpectedPointerToStruct = errors.New("expected a pointer to a struct")
	errUnsupportedFieldType    = errors.New("unsupported field type")
)

// readEnv populates cfg from environment variables declared through
// `env:"NAME[,overwrite]"` struct tags. Without the overwrite option, a
// field keeps a non-zero value already set by an earlier source.
func readEnv(spec any) error {
	structValue := reflect.ValueOf(spec)
	if structValue.Kind() != reflect.Ptr || structValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structValue = structValue.Elem()
	structType := structValue.Type()

	for i := 0; i < structValue.NumField(); i++ {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		tag := fieldType.Tag.Get("env")
		if tag == "" {
			if field.Kind() == reflect.Struct && field.CanAddr() {
				if err := readEnv(field.Addr().Interface()); err != nil {
					return err
				}
			}

			continue
		}

		parts := strings.Split(tag, ",")

		envValue, exists := os.LookupEnv(parts[0])
		if !exists || !field.CanSet() {
			continue
		}

		overwrite := slices.Contains(parts[1:], "overwrite")
		if !overwrite && !field.IsZero() {
			continue
		}

		if err := setFieldValue(field, fieldType.Name, parts[0], envValue); err != nil {
			return err
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, fieldName, envName, envValue string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)
	case reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(envValue)
			if err != nil {
				return fmt.Errorf("failed to parse duration for %s from %s (%s): %w",
					fieldName, envName, envValue, err)
			}

			field.SetInt(int64(d))

			return nil
		}

		fallthrough
	case reflect.Int:
		n, err := strconv.ParseInt(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int for %s from %s (%s): %w",
				fieldName, envName, envValue, err)
		}

		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf("failed to parse bool for %s from %s (%s): %w",
				fieldName, envName, envValue, err)
		}

		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w for field %s", errUnsupportedFieldType, fieldName)
		}

		var values []string

		for _, v := range strings.Split(envValue, ",") {
			if t := strings.TrimSpace(v); t != "" {
				values = append(values, t)
			}
		}

		field.Set(reflect.ValueOf(values))
	default:
		return fmt.Errorf("%w for field %s: %s", errUnsupportedFieldType, fieldName, field.Kind())
	}

	return nil
}

// useDotEnv loads a .env file from the working directory, then from the
// binary's directory, without overriding variables already set. Missing
// files are skipped silently.
func useDotEnv() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), ".env"))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Could not load .env file")

			continue
		}

		log.Info().Str("path", path).Msg("Loaded configuration from .env file")

		return
	}
}
