// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"context"
	"time"
)

// # Read Models

// Filter narrows the admin list.
type Filter struct {
	// Locale selects which translation the list shows. Entities without
	// one still appear, with empty locale-scoped fields.
	Locale    string
	Query     string
	Type      string
	Published *bool
}

// ListItem is the list representation of a news in one locale.
type ListItem struct {
	ID               int64      `json:"id"`
	Type             string     `json:"type"`
	Locale           string     `json:"locale"`
	Title            string     `json:"title"`
	RoutePath        string     `json:"route_path"`
	Published        bool       `json:"published"`
	PublishedAt      *time.Time `json:"published_at"`
	AvailableLocales []string   `json:"available_locales"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// # Data Access

// Repository persists the full News aggregate: the entity row, its
// translations and the SEO and excerpt records.
type Repository interface {

	/*
		ListNews returns a page of list items and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (locale, search query, type, published state)
		  - limit, offset: int
	*/
	ListNews(context context.Context, filter Filter, limit, offset int) ([]*ListItem, int, error)

	/*
		GetNews loads the complete aggregate in [DefaultLocale].

		Returns:
		  - error: dberr.ErrNotFound if no such news exists
	*/
	GetNews(context context.Context, id int64) (*News, error)

	/*
		CreateNews inserts the aggregate in one transaction. A preset ID is
		kept (used when restoring from the trash); otherwise one is assigned.
	*/
	CreateNews(context context.Context, news *News) error

	/*
		UpdateNews writes the aggregate in one transaction, guarded by
		news.Version. On success the version is incremented.

		Returns:
		  - error: apperr Conflict when the stored version differs
	*/
	UpdateNews(context context.Context, news *News) error

	// DeleteNews removes the aggregate; translations cascade.
	DeleteNews(context context.Context, id int64) error
}
