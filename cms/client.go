// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package cms supplies per-locale translation maps from the CMS-managed
// global holding the localized UI strings.
//
// The supplier contract is deliberately forgiving: a fetch or parse
// failure yields an empty map, never an error, so the resolver always has
// a map to operate against and rendering code never sees upstream
// failures. Failures are logged here instead.
package cms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"codeberg.org/uistrings/uistrings/i18n"
)

// maxResponseBytes bounds how much of a CMS response is read.
const maxResponseBytes = 8 << 20

var (
	errInvalidJSON = errors.New("invalid JSON response")
	errNotObject   = errors.New("response is not an object")
)

// Client fetches translation maps over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
	logger   zerolog.Logger
}

// NewClient returns a Client for the CMS global at endpoint. A zero
// timeout means 10 seconds.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   log.With().Str("sys", "cms").Logger(),
	}
}

// FetchMessages returns the translation map for locale. On any failure it
// logs a warning and returns an empty map; every subsequent lookup then
// misses and echoes its key.
func (c *Client) FetchMessages(ctx context.Context, locale string) i18n.TranslationMap {
	messages, err := c.fetch(ctx, locale)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("locale", locale).
			Msg("Falling back to an empty translation map")

		return i18n.TranslationMap{}
	}

	return messages
}

// FetchAll fetches the maps for all locales concurrently. Per-locale
// failures degrade to empty maps, so FetchAll always returns one map per
// requested locale.
func (c *Client) FetchAll(ctx context.Context, locales []string) map[string]i18n.TranslationMap {
	var mu sync.Mutex

	out := make(map[string]i18n.TranslationMap, len(locales))

	g, ctx := errgroup.WithContext(ctx)

	for _, locale := range locales {
		locale := locale
		g.Go(func() error {
			messages := c.FetchMessages(ctx, locale)

			mu.Lock()
			out[locale] = messages
			mu.Unlock()

			return nil
		})
	}

	// FetchMessages never fails, so neither does the group.
	_ = g.Wait()

	return out
}

func (c *Client) fetch(ctx context.Context, locale string) (i18n.TranslationMap, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	q := u.Query()
	q.Set("locale", locale)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	return parseMessages(body)
}

// parseMessages reads the string map from a CMS response. The map is
// taken from the "result" member when present, otherwise from the
// document root. Values may nest one level; anything that is not a string
// or an object of strings is dropped.
func parseMessages(body []byte) (i18n.TranslationMap, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	doc := gjson.ParseBytes(body)
	if result := doc.Get("result"); result.Exists() && result.IsObject() {
		doc = result
	}

	if !doc.IsObject() {
		return nil, errNotObject
	}

	return flatten(doc, true), nil
}

func flatten(doc gjson.Result, nest bool) i18n.TranslationMap {
	out := i18n.TranslationMap{}

	doc.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.Type == gjson.String:
			out[key.String()] = value.String()
		case nest && value.IsObject():
			out[key.String()] = map[string]any(flatten(value, false))
		}

		return true
	})

	return out
}
