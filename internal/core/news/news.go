// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package news implements the translatable News content entity and the
service, storage and HTTP layers around it.

Translation model:

  - A [News] has one active locale and at most one [Translation] per locale.
  - Locale-scoped getters read the active-locale record and return zero
    values when it is missing; they never create one.
  - Locale-scoped setters create the active-locale record on first write.
  - [Seo] and [Excerpt] are owned sub-entities with their own per-locale
    records; they follow the parent's active locale.

The entity itself never fails: unknown locales read as empty, and copying
from a locale without a record does nothing.
*/
package news

import (
	"slices"
	"time"
)

// DefaultLocale is the active locale of a freshly constructed [News].
const DefaultLocale = "en"

// Extension registry keys.
const (
	ExtSeo     = "seo"
	ExtExcerpt = "excerpt"
)

// Copyable is implemented by sub-entities that follow their parent across
// a copy to another locale.
type Copyable interface {
	CopyToLocale(locale string)
}

// MediaRef references an asset of the media library by id.
type MediaRef struct {
	ID int64 `json:"id"`
}

// cloneMedia returns a copy of ref that does not alias the original.
func cloneMedia(ref *MediaRef) *MediaRef {
	if ref == nil {
		return nil
	}
	clone := *ref
	return &clone
}

// # Entity

// News is a translatable article. Only ID, Type, Images and the audit
// fields are shared by all locales.
type News struct {
	ID        int64
	Type      string
	Images    []MediaRef
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	locale       string
	translations map[string]*Translation
	seo          *Seo
	excerpt      *Excerpt
	ext          map[string]Copyable
}

// New returns an empty entity in [DefaultLocale] with the default type.
func New() *News {
	return &News{
		Type:         DefaultType,
		Images:       []MediaRef{},
		locale:       DefaultLocale,
		translations: make(map[string]*Translation),
	}
}

// Locale returns the active locale.
func (n *News) Locale() string {
	if n.locale == "" {
		return DefaultLocale
	}
	return n.locale
}

// SetLocale switches the active locale of the entity and its sub-entities
// and rebuilds the extension registry. It never creates a translation.
func (n *News) SetLocale(locale string) *News {
	n.locale = locale
	n.Seo().setLocale(locale)
	n.Excerpt().setLocale(locale)
	n.ext = n.buildExt()
	return n
}

// # Translations

// translation returns the active-locale record, or nil.
func (n *News) translation() *Translation {
	return n.translations[n.Locale()]
}

// writableTranslation returns the active-locale record, creating it if absent.
// This is the only place translations come into existence.
func (n *News) writableTranslation() *Translation {
	if t := n.translation(); t != nil {
		return t
	}
	if n.translations == nil {
		n.translations = make(map[string]*Translation)
	}
	t := newTranslation(n, n.Locale())
	n.translations[t.locale] = t
	return t
}

// Translation returns the record for locale.
func (n *News) Translation(locale string) (*Translation, bool) {
	t, ok := n.translations[locale]
	return t, ok
}

// Translations returns every record ordered by locale.
func (n *News) Translations() []*Translation {
	out := make([]*Translation, 0, len(n.translations))
	for _, locale := range n.AvailableLocales() {
		out = append(out, n.translations[locale])
	}
	return out
}

// AvailableLocales returns the locales that have a record, sorted.
func (n *News) AvailableLocales() []string {
	locales := make([]string, 0, len(n.translations))
	for locale := range n.translations {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

// CopyToLocale copies the active-locale record to locale, overwriting any
// record already there, copies the sub-entities along, and makes locale
// active. Without an active-locale record the call changes nothing.
func (n *News) CopyToLocale(locale string) *News {
	source := n.translation()
	if source == nil {
		return n
	}

	if n.translations == nil {
		n.translations = make(map[string]*Translation)
	}
	n.translations[locale] = source.Clone(locale)

	for _, extension := range n.Ext() {
		extension.CopyToLocale(locale)
	}

	return n.SetLocale(locale)
}

// # Sub-entities

// Seo returns the SEO sub-entity, creating it on first access.
func (n *News) Seo() *Seo {
	if n.seo == nil {
		n.seo = newSeo(n, n.Locale())
	}
	return n.seo
}

// Excerpt returns the excerpt sub-entity, creating it on first access.
func (n *News) Excerpt() *Excerpt {
	if n.excerpt == nil {
		n.excerpt = newExcerpt(n, n.Locale())
	}
	return n.excerpt
}

// Ext returns the extension registry keyed by [ExtSeo] and [ExtExcerpt].
func (n *News) Ext() map[string]Copyable {
	if n.ext == nil {
		n.ext = n.buildExt()
	}
	return n.ext
}

func (n *News) buildExt() map[string]Copyable {
	return map[string]Copyable{
		ExtSeo:     n.Seo(),
		ExtExcerpt: n.Excerpt(),
	}
}

// # Locale-scoped fields

func (n *News) Title() string {
	if t := n.translation(); t != nil {
		return t.Title
	}
	return ""
}

func (n *News) SetTitle(title string) *News {
	n.writableTranslation().Title = title
	return n
}

func (n *News) Subtitle() string {
	if t := n.translation(); t != nil {
		return t.Subtitle
	}
	return ""
}

func (n *News) SetSubtitle(subtitle string) *News {
	n.writableTranslation().Subtitle = subtitle
	return n
}

func (n *News) Summary() string {
	if t := n.translation(); t != nil {
		return t.Summary
	}
	return ""
}

func (n *News) SetSummary(summary string) *News {
	n.writableTranslation().Summary = summary
	return n
}

func (n *News) Text() string {
	if t := n.translation(); t != nil {
		return t.Text
	}
	return ""
}

func (n *News) SetText(text string) *News {
	n.writableTranslation().Text = text
	return n
}

func (n *News) Footer() string {
	if t := n.translation(); t != nil {
		return t.Footer
	}
	return ""
}

func (n *News) SetFooter(footer string) *News {
	n.writableTranslation().Footer = footer
	return n
}

// RoutePath is the public path of the active locale, e.g. "/news/hello".
func (n *News) RoutePath() string {
	if t := n.translation(); t != nil {
		return t.RoutePath
	}
	return ""
}

func (n *News) SetRoutePath(path string) *News {
	n.writableTranslation().RoutePath = path
	return n
}

func (n *News) Image() *MediaRef {
	if t := n.translation(); t != nil {
		return t.Image
	}
	return nil
}

func (n *News) SetImage(image *MediaRef) *News {
	n.writableTranslation().Image = image
	return n
}

func (n *News) Pdf() *MediaRef {
	if t := n.translation(); t != nil {
		return t.Pdf
	}
	return nil
}

func (n *News) SetPdf(pdf *MediaRef) *News {
	n.writableTranslation().Pdf = pdf
	return n
}

func (n *News) URL() string {
	if t := n.translation(); t != nil {
		return t.URL
	}
	return ""
}

func (n *News) SetURL(url string) *News {
	n.writableTranslation().URL = url
	return n
}

func (n *News) IsPublished() bool {
	if t := n.translation(); t != nil {
		return t.Published
	}
	return false
}

func (n *News) SetPublished(published bool) *News {
	n.writableTranslation().Published = published
	return n
}

func (n *News) PublishedAt() *time.Time {
	if t := n.translation(); t != nil {
		return t.PublishedAt
	}
	return nil
}

func (n *News) SetPublishedAt(at *time.Time) *News {
	n.writableTranslation().PublishedAt = at
	return n
}

// IsLive reports whether the active locale is published and its publish
// date, if any, is not after now.
func (n *News) IsLive(now time.Time) bool {
	if !n.IsPublished() {
		return false
	}
	at := n.PublishedAt()
	return at == nil || !at.After(now)
}
