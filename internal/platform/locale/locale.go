// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package locale canonicalises content locale codes and holds the set of
locales the installation serves.

Codes are BCP 47 tags parsed with golang.org/x/text/language, so "de_AT",
"de-at" and "de-AT" all resolve to "de-AT".
*/
package locale

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Normalize parses raw as a language tag and returns its canonical form.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("locale: empty tag")
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("locale: parse %q: %w", raw, err)
	}

	return tag.String(), nil
}

// Set is the ordered list of locales content may be written in, plus the
// fallback used when a request names none.
type Set struct {
	locales  []string
	fallback string
}

// NewSet canonicalises every entry of locales. fallback must be one of them.
func NewSet(locales []string, fallback string) (Set, error) {
	set := Set{locales: make([]string, 0, len(locales))}

	for _, raw := range locales {
		code, err := Normalize(raw)
		if err != nil {
			return Set{}, err
		}
		if !slices.Contains(set.locales, code) {
			set.locales = append(set.locales, code)
		}
	}

	def, err := Normalize(fallback)
	if err != nil {
		return Set{}, err
	}
	if !slices.Contains(set.locales, def) {
		return Set{}, fmt.Errorf("locale: default %q is not a configured locale", def)
	}
	set.fallback = def

	return set, nil
}

// MustSet is [NewSet] for static configuration in tests and tools.
func MustSet(locales []string, fallback string) Set {
	set, err := NewSet(locales, fallback)
	if err != nil {
		panic(err)
	}
	return set
}

// Default returns the fallback locale.
func (s Set) Default() string { return s.fallback }

// List returns a copy of the configured locales in configuration order.
func (s Set) List() []string { return slices.Clone(s.locales) }

// Contains reports whether raw canonicalises to a configured locale.
func (s Set) Contains(raw string) bool {
	code, err := Normalize(raw)
	if err != nil {
		return false
	}
	return slices.Contains(s.locales, code)
}

// Resolve returns the canonical form of raw, or the default when raw is
// empty. ok is false for unparsable or unconfigured locales.
func (s Set) Resolve(raw string) (code string, ok bool) {
	if strings.TrimSpace(raw) == "" {
		return s.fallback, true
	}

	code, err := Normalize(raw)
	if err != nil || !slices.Contains(s.locales, code) {
		return "", false
	}
	return code, true
}
