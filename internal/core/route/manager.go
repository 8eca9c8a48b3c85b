// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package route

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/validate"
	"github.com/taibuivan/newsdesk/pkg/slug"
)

// maxConflictSuffix bounds the "-n" suffixes tried for a taken path.
const maxConflictSuffix = 100

// Manager creates, moves and resolves routes.
type Manager struct {
	repo   Repository
	logger *slog.Logger
}

// NewManager constructs a route manager.
func NewManager(repo Repository, logger *slog.Logger) *Manager {
	return &Manager{repo: repo, logger: logger}
}

// NormalizePath returns path with a leading slash, no trailing slash and
// every segment slugified. It is "" when nothing usable remains.
func NormalizePath(path string) string {
	return slug.Path(path)
}

// GeneratePath normalises path and makes it available for the entity in
// locale. A path held by another entity gets "-1", "-2", … appended; a
// path the entity already holds is returned unchanged.
func (manager *Manager) GeneratePath(context context.Context, entityClass, entityID, locale, path string) (string, error) {
	base := NormalizePath(path)
	if base == "" {
		return "", validate.RequiredError("route_path", "Route path is empty after normalisation")
	}

	candidate := base
	for suffix := 1; suffix <= maxConflictSuffix; suffix++ {
		existing, err := manager.repo.FindByPath(context, locale, candidate)
		if dberr.IsNotFound(err) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if entityID != "" && existing.EntityClass == entityClass && existing.EntityID == entityID {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}

	return "", apperr.Conflict(fmt.Sprintf("No free route path for %q", base))
}

// CreateOrUpdateByAttributes registers path for the entity in locale,
// moving its existing route there if it has one. The stored path may
// differ from the requested one after normalisation and conflict handling.
func (manager *Manager) CreateOrUpdateByAttributes(context context.Context, entityClass, entityID, locale, path string) (*Route, error) {
	finalPath, err := manager.GeneratePath(context, entityClass, entityID, locale, path)
	if err != nil {
		return nil, err
	}

	existing, err := manager.repo.FindByEntity(context, entityClass, entityID, locale)
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		route := existing[0]
		if route.Path == finalPath {
			return route, nil
		}

		previous := route.Path
		if err := manager.repo.UpdatePath(context, route.ID, finalPath); err != nil {
			return nil, err
		}
		route.Path = finalPath

		manager.logger.InfoContext(context, "route_moved",
			slog.String("entity_class", entityClass),
			slog.String("entity_id", entityID),
			slog.String("locale", locale),
			slog.String("from", previous),
			slog.String("to", finalPath),
		)
		return route, nil
	}

	route := &Route{
		Path:        finalPath,
		Locale:      locale,
		EntityClass: entityClass,
		EntityID:    entityID,
	}
	if err := manager.repo.Create(context, route); err != nil {
		return nil, err
	}

	manager.logger.InfoContext(context, "route_created",
		slog.String("entity_class", entityClass),
		slog.String("entity_id", entityID),
		slog.String("locale", locale),
		slog.String("path", finalPath),
	)
	return route, nil
}

// FindAllByEntity lists the entity's routes; locale "" means all locales.
func (manager *Manager) FindAllByEntity(context context.Context, entityClass, entityID, locale string) ([]*Route, error) {
	return manager.repo.FindByEntity(context, entityClass, entityID, locale)
}

// RemoveByEntity deletes the entity's routes; locale "" means all locales.
func (manager *Manager) RemoveByEntity(context context.Context, entityClass, entityID, locale string) ([]*Route, error) {
	removed, err := manager.repo.DeleteByEntity(context, entityClass, entityID, locale)
	if err != nil {
		return nil, err
	}

	if len(removed) > 0 {
		manager.logger.InfoContext(context, "routes_removed",
			slog.String("entity_class", entityClass),
			slog.String("entity_id", entityID),
			slog.Int("count", len(removed)),
		)
	}
	return removed, nil
}

// Resolve returns the route registered for path in locale.
func (manager *Manager) Resolve(context context.Context, path, locale string) (*Route, error) {
	normalized := NormalizePath(path)
	if normalized == "" {
		return nil, apperr.NotFound("Route")
	}

	route, err := manager.repo.FindByPath(context, locale, normalized)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Route")
	}
	return route, err
}
