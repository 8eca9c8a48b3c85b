// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package route maintains the public URL registry: which entity a path
resolves to in each locale.

Invariants:

  - A path is unique within a locale.
  - An entity has at most one route per locale.
  - Paths are normalised: leading slash, no trailing slash, slug segments.
*/
package route

import "time"

// Route maps a locale-scoped path to an entity.
type Route struct {
	ID          int64     `json:"id"`
	Path        string    `json:"path"`
	Locale      string    `json:"locale"`
	EntityClass string    `json:"entity_class"`
	EntityID    string    `json:"entity_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
