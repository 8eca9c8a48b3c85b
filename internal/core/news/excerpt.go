// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"encoding/json"
	"slices"
)

// Excerpt holds the per-locale teaser shown in lists and link previews.
type Excerpt struct {
	news         *News
	locale       string
	translations map[string]*ExcerptTranslation
}

// ExcerptTranslation is the excerpt record of one locale.
type ExcerptTranslation struct {
	locale string

	Title       string     `json:"title"`
	More        string     `json:"more"`
	Description string     `json:"description"`
	Categories  []int64    `json:"categories"`
	Tags        []string   `json:"tags"`
	Icons       []MediaRef `json:"icons"`
	Images      []MediaRef `json:"images"`
}

func newExcerpt(n *News, locale string) *Excerpt {
	return &Excerpt{news: n, locale: locale, translations: make(map[string]*ExcerptTranslation)}
}

// Locale returns the record's locale.
func (t *ExcerptTranslation) Locale() string { return t.locale }

// Clone copies the record for locale; slices are not shared.
func (t *ExcerptTranslation) Clone(locale string) *ExcerptTranslation {
	return &ExcerptTranslation{
		locale:      locale,
		Title:       t.Title,
		More:        t.More,
		Description: t.Description,
		Categories:  slices.Clone(t.Categories),
		Tags:        slices.Clone(t.Tags),
		Icons:       slices.Clone(t.Icons),
		Images:      slices.Clone(t.Images),
	}
}

type excerptTranslationAlias ExcerptTranslation

type excerptTranslationJSON struct {
	Locale string `json:"locale"`
	*excerptTranslationAlias
}

func (t *ExcerptTranslation) MarshalJSON() ([]byte, error) {
	return json.Marshal(excerptTranslationJSON{Locale: t.locale, excerptTranslationAlias: (*excerptTranslationAlias)(t)})
}

func (t *ExcerptTranslation) UnmarshalJSON(data []byte) error {
	aux := excerptTranslationJSON{excerptTranslationAlias: (*excerptTranslationAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.locale = aux.Locale
	return nil
}

// NewsID returns the id of the owning entity.
func (e *Excerpt) NewsID() int64 { return e.news.ID }

// Locale returns the active locale, always equal to the parent's.
func (e *Excerpt) Locale() string { return e.locale }

func (e *Excerpt) setLocale(locale string) { e.locale = locale }

// Translation returns the record for locale.
func (e *Excerpt) Translation(locale string) (*ExcerptTranslation, bool) {
	t, ok := e.translations[locale]
	return t, ok
}

// Translations returns every record ordered by locale.
func (e *Excerpt) Translations() []*ExcerptTranslation {
	locales := make([]string, 0, len(e.translations))
	for locale := range e.translations {
		locales = append(locales, locale)
	}
	slices.Sort(locales)

	out := make([]*ExcerptTranslation, 0, len(locales))
	for _, locale := range locales {
		out = append(out, e.translations[locale])
	}
	return out
}

func (e *Excerpt) current() *ExcerptTranslation {
	return e.translations[e.locale]
}

func (e *Excerpt) writable() *ExcerptTranslation {
	if t := e.current(); t != nil {
		return t
	}
	t := &ExcerptTranslation{locale: e.locale}
	e.translations[e.locale] = t
	return t
}

// CopyToLocale copies the active-locale record to locale.
func (e *Excerpt) CopyToLocale(locale string) {
	if source := e.current(); source != nil {
		e.translations[locale] = source.Clone(locale)
	}
}

// Current returns a copy of the active-locale record, or the zero record.
func (e *Excerpt) Current() ExcerptTranslation {
	if t := e.current(); t != nil {
		return *t
	}
	return ExcerptTranslation{locale: e.locale}
}

// Update applies fn to the active-locale record, creating it if absent.
func (e *Excerpt) Update(fn func(t *ExcerptTranslation)) {
	fn(e.writable())
}

func (e *Excerpt) put(t *ExcerptTranslation) {
	e.translations[t.locale] = t
}
