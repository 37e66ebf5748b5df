// Copyright 2025, the uistrings contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last recorded miss before
// the ledger is flushed.
const DefaultDebounce = 2 * time.Second

// FlushFunc receives the rendered field-declaration snippet and the
// number of distinct keys it covers.
type FlushFunc func(snippet string, keys int)

// Collector accumulates missing translation keys with the contexts they
// were observed in, and flushes a ready-to-paste field-declaration
// snippet after a quiet period.
//
// Every Record re-arms the debounce timer, so a steady stream of misses
// defers the flush until the stream pauses. This bounds output volume
// while a page is still rendering. Callers must not assume synchronous
// side effects from Record.
//
// Collector is an explicitly owned object: independent resolvers share a
// ledger only when configured with the same Collector.
type Collector struct {
	mu     sync.Mutex
	ledger map[string]map[string]struct{}
	order  []string
	timer  *time.Timer
	wait   time.Duration
	flush  FlushFunc
}

// NewCollector returns a Collector flushing through fn after wait of
// inactivity. A zero wait means DefaultDebounce; a nil fn logs the
// snippet through the package logger.
func NewCollector(wait time.Duration, fn FlushFunc) *Collector {
	if wait <= 0 {
		wait = DefaultDebounce
	}

	if fn == nil {
		fn = logSnippet
	}

	return &Collector{
		ledger: make(map[string]map[string]struct{}),
		wait:   wait,
		flush:  fn,
	}
}

// Record appends context to key's context set and (re)starts the debounce
// timer. The ledger keys are the raw, non-normalized lookup keys that
// failed resolution.
func (c *Collector) Record(key, context string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.ledger[key]
	if !ok {
		set = make(map[string]struct{})
		c.ledger[key] = set
		c.order = append(c.order, key)
	}

	set[context] = struct{}{}

	if c.timer != nil {
		c.timer.Stop()
	}

	c.timer = time.AfterFunc(c.wait, c.Flush)
}

// Flush renders one field declaration per ledger entry and clears the
// ledger. Flushing an empty ledger is a no-op, so Flush is idempotent.
func (c *Collector) Flush() {
	c.mu.Lock()

	if len(c.ledger) == 0 {
		c.mu.Unlock()

		return
	}

	snippet := renderSnippet(c.order, c.ledger)
	keys := len(c.order)

	c.ledger = make(map[string]map[string]struct{})
	c.order = nil

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	fn := c.flush

	c.mu.Unlock()

	fn(snippet, keys)
}

// Stop cancels any pending flush without emitting it. The ledger is kept,
// so a later Record or Flush still covers earlier misses.
func (c *Collector) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// snapshot copies the ledger with sorted context lists, for tests.
func (c *Collector) snapshot() map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string][]string, len(c.ledger))

	for key, set := range c.ledger {
		contexts := make([]string, 0, len(set))
		for ctx := range set {
			contexts = append(contexts, ctx)
		}

		sort.Strings(contexts)

		out[key] = contexts
	}

	return out
}

// renderSnippet renders field declarations for the ledger in first-seen
// key order, each annotated with the contexts the key was observed in.
func renderSnippet(order []string, ledger map[string]map[string]struct{}) string {
	var b strings.Builder

	for _, key := range order {
		contexts := make([]string, 0, len(ledger[key]))
		for ctx := range ledger[key] {
			contexts = append(contexts, ctx)
		}

		sort.Strings(contexts)

		fmt.Fprintf(&b, "// %s\n", strings.Join(contexts, ", "))
		fmt.Fprintf(&b, "{\n")
		fmt.Fprintf(&b, "  name: '%s',\n", Normalize(key))
		fmt.Fprintf(&b, "  type: 'text',\n")
		fmt.Fprintf(&b, "  label: '%s',\n", escapeSingleQuotes(key))
		fmt.Fprintf(&b, "  localized: true,\n")
		fmt.Fprintf(&b, "},\n")
	}

	return b.String()
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

func logSnippet(snippet string, keys int) {
	Logger.Warn().
		Int("keys", keys).
		Msg("Missing translations, add the following field declarations:\n" + snippet)
}
