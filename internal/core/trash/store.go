// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package trash

import (
	"context"
	"time"
)

// Repository is the data access contract of the trash.
type Repository interface {
	// Create inserts item and fills its ID and TrashedAt.
	Create(context context.Context, item *Item) error

	// List returns a page of items, newest first, and the total count.
	List(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error)

	// FindByID returns the item including its payload.
	FindByID(context context.Context, id int64) (*Item, error)

	// Delete removes one item.
	Delete(context context.Context, id int64) error

	// DeleteOlderThan removes items trashed before cutoff and reports how many.
	DeleteOlderThan(context context.Context, cutoff time.Time) (int64, error)
}
