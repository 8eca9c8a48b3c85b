// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import "time"

// Snapshot is the complete, locale-independent state of a [News]. It is
// what the trash stores and what a copy is built from.
type Snapshot struct {
	ID           int64                 `json:"id"`
	Type         string                `json:"type"`
	Images       []MediaRef            `json:"images"`
	Version      int                   `json:"version"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Translations []*Translation        `json:"translations"`
	Seo          []*SeoTranslation     `json:"seo"`
	Excerpt      []*ExcerptTranslation `json:"excerpt"`
}

// Snapshot copies every record of the entity. The result shares no
// records with n.
func (n *News) Snapshot() Snapshot {
	snapshot := Snapshot{
		ID:        n.ID,
		Type:      n.Type,
		Images:    append([]MediaRef{}, n.Images...),
		Version:   n.Version,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}

	for _, t := range n.Translations() {
		clone := *t
		snapshot.Translations = append(snapshot.Translations, &clone)
	}
	for _, t := range n.Seo().Translations() {
		snapshot.Seo = append(snapshot.Seo, t.Clone(t.locale))
	}
	for _, t := range n.Excerpt().Translations() {
		snapshot.Excerpt = append(snapshot.Excerpt, t.Clone(t.locale))
	}

	return snapshot
}

// FromSnapshot rebuilds an entity in [DefaultLocale] from snapshot.
func FromSnapshot(snapshot Snapshot) *News {
	n := New()
	n.ID = snapshot.ID
	n.Version = snapshot.Version
	n.CreatedAt = snapshot.CreatedAt
	n.UpdatedAt = snapshot.UpdatedAt
	if snapshot.Type != "" {
		n.Type = snapshot.Type
	}
	if snapshot.Images != nil {
		n.Images = append([]MediaRef{}, snapshot.Images...)
	}

	for _, t := range snapshot.Translations {
		clone := *t
		clone.news = n
		n.translations[clone.locale] = &clone
	}
	for _, t := range snapshot.Seo {
		n.Seo().put(t.Clone(t.locale))
	}
	for _, t := range snapshot.Excerpt {
		n.Excerpt().put(t.Clone(t.locale))
	}

	return n
}
