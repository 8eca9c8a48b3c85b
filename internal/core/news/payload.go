// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"slices"

	"github.com/taibuivan/newsdesk/internal/platform/sanitize"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
	"github.com/taibuivan/newsdesk/pkg/pointer"
)

// Field names used in validation errors.
const (
	FieldTitle        = "title"
	FieldRoutePath    = "route_path"
	FieldURL          = "url"
	FieldType         = "type"
	FieldCanonicalURL = "ext.seo.canonical_url"
)

const (
	maxTitleLength     = 255
	maxRoutePathLength = 255
)

// # Request Payloads

// UpdateInput is the JSON body of create and update requests. Nil fields
// are absent and leave the stored value untouched.
type UpdateInput struct {
	Title     *string     `json:"title"`
	Subtitle  *string     `json:"subtitle"`
	Summary   *string     `json:"summary"`
	Text      *string     `json:"text"`
	Footer    *string     `json:"footer"`
	RoutePath *string     `json:"route_path"`
	Image     *MediaRef   `json:"image"`
	Pdf       *MediaRef   `json:"pdf"`
	URL       *string     `json:"url"`
	Type      *string     `json:"type"`
	Images    *[]MediaRef `json:"images"`
	Version   *int        `json:"version"`
	Ext       *ExtInput   `json:"ext"`
}

// ExtInput carries the sub-entity payloads.
type ExtInput struct {
	Seo     *SeoInput     `json:"seo"`
	Excerpt *ExcerptInput `json:"excerpt"`
}

// SeoInput updates the active-locale SEO record.
type SeoInput struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Keywords      *string `json:"keywords"`
	CanonicalURL  *string `json:"canonical_url"`
	NoIndex       *bool   `json:"no_index"`
	NoFollow      *bool   `json:"no_follow"`
	HideInSitemap *bool   `json:"hide_in_sitemap"`
}

// ExcerptInput updates the active-locale excerpt record.
type ExcerptInput struct {
	Title       *string     `json:"title"`
	More        *string     `json:"more"`
	Description *string     `json:"description"`
	Categories  *[]int64    `json:"categories"`
	Tags        *[]string   `json:"tags"`
	Icons       *[]MediaRef `json:"icons"`
	Images      *[]MediaRef `json:"images"`
}

// sanitize strips markup from plain fields and unsafe markup from rich ones.
func (input *UpdateInput) sanitize() {
	input.Title = sanitize.PlainPtr(input.Title)
	input.Subtitle = sanitize.PlainPtr(input.Subtitle)
	input.Summary = sanitize.RichPtr(input.Summary)
	input.Text = sanitize.RichPtr(input.Text)
	input.Footer = sanitize.RichPtr(input.Footer)

	if input.Ext == nil {
		return
	}
	if seo := input.Ext.Seo; seo != nil {
		seo.Title = sanitize.PlainPtr(seo.Title)
		seo.Description = sanitize.PlainPtr(seo.Description)
		seo.Keywords = sanitize.PlainPtr(seo.Keywords)
	}
	if excerpt := input.Ext.Excerpt; excerpt != nil {
		excerpt.Title = sanitize.PlainPtr(excerpt.Title)
		excerpt.More = sanitize.PlainPtr(excerpt.More)
		excerpt.Description = sanitize.RichPtr(excerpt.Description)
	}
}

// validate checks the supplied fields. A title is mandatory on create.
func (input *UpdateInput) validate(create bool) error {
	v := &validate.Validator{}

	if create || input.Title != nil {
		title := pointer.Val(input.Title)
		v.Required(FieldTitle, title).MaxLen(FieldTitle, title, maxTitleLength)
	}

	if input.RoutePath != nil {
		v.MaxLen(FieldRoutePath, *input.RoutePath, maxRoutePathLength)
	}

	v.URL(FieldURL, pointer.Val(input.URL))

	if input.Type != nil {
		v.OneOf(FieldType, *input.Type, TypeValues()...)
	}

	if input.Ext != nil && input.Ext.Seo != nil {
		v.URL(FieldCanonicalURL, pointer.Val(input.Ext.Seo.CanonicalURL))
	}

	return v.Err()
}

// apply writes the supplied fields into n's active locale. The route path
// is left to the service, which has to resolve conflicts first.
func (input *UpdateInput) apply(n *News) {
	pointer.Apply(input.Title, func(v string) { n.SetTitle(v) })
	pointer.Apply(input.Subtitle, func(v string) { n.SetSubtitle(v) })
	pointer.Apply(input.Summary, func(v string) { n.SetSummary(v) })
	pointer.Apply(input.Text, func(v string) { n.SetText(v) })
	pointer.Apply(input.Footer, func(v string) { n.SetFooter(v) })
	pointer.Apply(input.URL, func(v string) { n.SetURL(v) })

	if input.Image != nil {
		n.SetImage(cloneMedia(input.Image))
	}
	if input.Pdf != nil {
		n.SetPdf(cloneMedia(input.Pdf))
	}

	pointer.Apply(input.Type, func(v string) { n.Type = v })
	pointer.Apply(input.Images, func(v []MediaRef) { n.Images = slices.Clone(v) })

	if input.Ext == nil {
		return
	}

	if seo := input.Ext.Seo; seo != nil {
		n.Seo().Update(func(t *SeoTranslation) {
			pointer.Apply(seo.Title, func(v string) { t.Title = v })
			pointer.Apply(seo.Description, func(v string) { t.Description = v })
			pointer.Apply(seo.Keywords, func(v string) { t.Keywords = v })
			pointer.Apply(seo.CanonicalURL, func(v string) { t.CanonicalURL = v })
			pointer.Apply(seo.NoIndex, func(v bool) { t.NoIndex = v })
			pointer.Apply(seo.NoFollow, func(v bool) { t.NoFollow = v })
			pointer.Apply(seo.HideInSitemap, func(v bool) { t.HideInSitemap = v })
		})
	}

	if excerpt := input.Ext.Excerpt; excerpt != nil {
		n.Excerpt().Update(func(t *ExcerptTranslation) {
			pointer.Apply(excerpt.Title, func(v string) { t.Title = v })
			pointer.Apply(excerpt.More, func(v string) { t.More = v })
			pointer.Apply(excerpt.Description, func(v string) { t.Description = v })
			pointer.Apply(excerpt.Categories, func(v []int64) { t.Categories = slices.Clone(v) })
			pointer.Apply(excerpt.Tags, func(v []string) { t.Tags = slices.Clone(v) })
			pointer.Apply(excerpt.Icons, func(v []MediaRef) { t.Icons = slices.Clone(v) })
			pointer.Apply(excerpt.Images, func(v []MediaRef) { t.Images = slices.Clone(v) })
		})
	}
}
