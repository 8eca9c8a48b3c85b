// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"encoding/json"
	"time"
)

// Translation holds the locale-specific fields of a [News].
// Its locale is fixed at creation.
type Translation struct {
	locale string
	news   *News

	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Summary     string     `json:"summary"`
	Text        string     `json:"text"`
	Footer      string     `json:"footer"`
	RoutePath   string     `json:"route_path"`
	Image       *MediaRef  `json:"image"`
	Pdf         *MediaRef  `json:"pdf"`
	URL         string     `json:"url"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
}

func newTranslation(n *News, locale string) *Translation {
	return &Translation{locale: locale, news: n}
}

// Locale returns the locale this record belongs to.
func (t *Translation) Locale() string { return t.locale }

// News returns the owning entity.
func (t *Translation) News() *News { return t.news }

// Clone copies the content fields into a new record for locale owned by
// the same entity. Audit stamps are left for the next save to fill.
func (t *Translation) Clone(locale string) *Translation {
	clone := &Translation{
		locale:    locale,
		news:      t.news,
		Title:     t.Title,
		Subtitle:  t.Subtitle,
		Summary:   t.Summary,
		Text:      t.Text,
		Footer:    t.Footer,
		RoutePath: t.RoutePath,
		Image:     cloneMedia(t.Image),
		Pdf:       cloneMedia(t.Pdf),
		URL:       t.URL,
		Published: t.Published,
	}
	if t.PublishedAt != nil {
		at := *t.PublishedAt
		clone.PublishedAt = &at
	}
	return clone
}

// Stamp records who touched the record and when.
func (t *Translation) Stamp(actor string, at time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = at
		t.CreatedBy = actor
	}
	t.UpdatedAt = at
	t.UpdatedBy = actor
}

// translationAlias drops the methods of Translation so the JSON helpers
// below do not recurse.
type translationAlias Translation

type translationJSON struct {
	Locale string `json:"locale"`
	*translationAlias
}

// MarshalJSON includes the locale, which is otherwise unexported.
func (t *Translation) MarshalJSON() ([]byte, error) {
	return json.Marshal(translationJSON{Locale: t.locale, translationAlias: (*translationAlias)(t)})
}

// UnmarshalJSON restores the locale. The owner is linked by [FromSnapshot].
func (t *Translation) UnmarshalJSON(data []byte) error {
	aux := translationJSON{translationAlias: (*translationAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.locale = aux.Locale
	return nil
}
