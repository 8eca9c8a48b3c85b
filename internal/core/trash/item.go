// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package trash keeps snapshots of deleted resources so they can be restored
until the retention period expires.

Each resource type registers a [Restorer] under its resource key; the
manager dispatches restores to it and never interprets payloads itself.
*/
package trash

import (
	"context"
	"encoding/json"
	"time"
)

// Item is one trashed resource.
type Item struct {
	ID          int64           `json:"id"`
	ResourceKey string          `json:"resource_key"`
	ResourceID  string          `json:"resource_id"`
	Title       string          `json:"title"`
	Locale      string          `json:"locale"`
	Payload     json.RawMessage `json:"-"`
	TrashedBy   string          `json:"trashed_by"`
	TrashedAt   time.Time       `json:"trashed_at"`
}

// Restorer recreates a resource from its trashed payload and returns the
// id it was restored under.
type Restorer interface {
	Restore(context context.Context, payload json.RawMessage) (string, error)
}

// Filter narrows [Repository.List].
type Filter struct {
	ResourceKey string
}
