// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"encoding/json"
	"time"
)

// View is the API representation of a [News] in its active locale.
type View struct {
	ID               int64      `json:"id"`
	Type             string     `json:"type"`
	Locale           string     `json:"locale"`
	Title            string     `json:"title"`
	Subtitle         string     `json:"subtitle"`
	Summary          string     `json:"summary"`
	Text             string     `json:"text"`
	Footer           string     `json:"footer"`
	RoutePath        string     `json:"route_path"`
	Image            *MediaRef  `json:"image"`
	Pdf              *MediaRef  `json:"pdf"`
	URL              string     `json:"url"`
	Published        bool       `json:"published"`
	PublishedAt      *time.Time `json:"published_at"`
	Images           []MediaRef `json:"images"`
	Ext              ExtView    `json:"ext"`
	AvailableLocales []string   `json:"available_locales"`
	Version          int        `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ExtView carries the active-locale records of the sub-entities.
type ExtView struct {
	Seo     *SeoTranslation     `json:"seo"`
	Excerpt *ExcerptTranslation `json:"excerpt"`
}

// View renders the active locale.
func (n *News) View() View {
	seo := n.Seo().Current()
	excerpt := n.Excerpt().Current()
	if excerpt.Categories == nil {
		excerpt.Categories = []int64{}
	}
	if excerpt.Tags == nil {
		excerpt.Tags = []string{}
	}
	if excerpt.Icons == nil {
		excerpt.Icons = []MediaRef{}
	}
	if excerpt.Images == nil {
		excerpt.Images = []MediaRef{}
	}

	images := n.Images
	if images == nil {
		images = []MediaRef{}
	}

	return View{
		ID:               n.ID,
		Type:             n.Type,
		Locale:           n.Locale(),
		Title:            n.Title(),
		Subtitle:         n.Subtitle(),
		Summary:          n.Summary(),
		Text:             n.Text(),
		Footer:           n.Footer(),
		RoutePath:        n.RoutePath(),
		Image:            n.Image(),
		Pdf:              n.Pdf(),
		URL:              n.URL(),
		Published:        n.IsPublished(),
		PublishedAt:      n.PublishedAt(),
		Images:           images,
		Ext:              ExtView{Seo: &seo, Excerpt: &excerpt},
		AvailableLocales: n.AvailableLocales(),
		Version:          n.Version,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

// MarshalJSON renders [News.View].
func (n *News) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.View())
}
