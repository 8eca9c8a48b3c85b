// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package route

import "context"

// Repository is the data access contract of the route registry.
type Repository interface {

	/*
		FindByPath returns the route registered for path in locale.

		Returns:
		  - error: dberr.ErrNotFound when no route matches
	*/
	FindByPath(context context.Context, locale, path string) (*Route, error)

	/*
		FindByEntity returns the entity's routes. An empty locale matches
		every locale.
	*/
	FindByEntity(context context.Context, entityClass, entityID, locale string) ([]*Route, error)

	// Create inserts route and fills its ID and timestamps.
	Create(context context.Context, route *Route) error

	// UpdatePath moves an existing route to path.
	UpdatePath(context context.Context, id int64, path string) error

	/*
		DeleteByEntity removes the entity's routes (all locales when locale
		is empty) and returns what was removed.
	*/
	DeleteByEntity(context context.Context, entityClass, entityID, locale string) ([]*Route, error)
}
