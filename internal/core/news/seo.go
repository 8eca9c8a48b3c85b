// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"encoding/json"
	"slices"
)

// Seo holds per-locale search engine metadata of a [News].
type Seo struct {
	news         *News
	locale       string
	translations map[string]*SeoTranslation
}

// SeoTranslation is the SEO record of one locale.
type SeoTranslation struct {
	locale string

	Title         string `json:"title"`
	Description   string `json:"description"`
	Keywords      string `json:"keywords"`
	CanonicalURL  string `json:"canonical_url"`
	NoIndex       bool   `json:"no_index"`
	NoFollow      bool   `json:"no_follow"`
	HideInSitemap bool   `json:"hide_in_sitemap"`
}

func newSeo(n *News, locale string) *Seo {
	return &Seo{news: n, locale: locale, translations: make(map[string]*SeoTranslation)}
}

// Locale returns the record's locale.
func (t *SeoTranslation) Locale() string { return t.locale }

// Clone copies the record for locale.
func (t *SeoTranslation) Clone(locale string) *SeoTranslation {
	clone := *t
	clone.locale = locale
	return &clone
}

type seoTranslationAlias SeoTranslation

type seoTranslationJSON struct {
	Locale string `json:"locale"`
	*seoTranslationAlias
}

func (t *SeoTranslation) MarshalJSON() ([]byte, error) {
	return json.Marshal(seoTranslationJSON{Locale: t.locale, seoTranslationAlias: (*seoTranslationAlias)(t)})
}

func (t *SeoTranslation) UnmarshalJSON(data []byte) error {
	aux := seoTranslationJSON{seoTranslationAlias: (*seoTranslationAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.locale = aux.Locale
	return nil
}

// NewsID returns the id of the owning entity.
func (s *Seo) NewsID() int64 { return s.news.ID }

// Locale returns the active locale, always equal to the parent's.
func (s *Seo) Locale() string { return s.locale }

func (s *Seo) setLocale(locale string) { s.locale = locale }

// Translation returns the record for locale.
func (s *Seo) Translation(locale string) (*SeoTranslation, bool) {
	t, ok := s.translations[locale]
	return t, ok
}

// Translations returns every record ordered by locale.
func (s *Seo) Translations() []*SeoTranslation {
	locales := make([]string, 0, len(s.translations))
	for locale := range s.translations {
		locales = append(locales, locale)
	}
	slices.Sort(locales)

	out := make([]*SeoTranslation, 0, len(locales))
	for _, locale := range locales {
		out = append(out, s.translations[locale])
	}
	return out
}

func (s *Seo) current() *SeoTranslation {
	return s.translations[s.locale]
}

func (s *Seo) writable() *SeoTranslation {
	if t := s.current(); t != nil {
		return t
	}
	t := &SeoTranslation{locale: s.locale}
	s.translations[s.locale] = t
	return t
}

// CopyToLocale copies the active-locale record to locale. It does not
// switch the active locale; the parent does that.
func (s *Seo) CopyToLocale(locale string) {
	if source := s.current(); source != nil {
		s.translations[locale] = source.Clone(locale)
	}
}

// Current returns a copy of the active-locale record, or the zero record.
func (s *Seo) Current() SeoTranslation {
	if t := s.current(); t != nil {
		return *t
	}
	return SeoTranslation{locale: s.locale}
}

// Update applies fn to the active-locale record, creating it if absent.
func (s *Seo) Update(fn func(t *SeoTranslation)) {
	fn(s.writable())
}

// put stores a hydrated record.
func (s *Seo) put(t *SeoTranslation) {
	s.translations[t.locale] = t
}
