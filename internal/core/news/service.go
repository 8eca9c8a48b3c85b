// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/taibuivan/newsdesk/internal/core/route"
	"github.com/taibuivan/newsdesk/internal/core/trash"
	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/ctxutil"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/sec"
	"github.com/taibuivan/newsdesk/pkg/pointer"
	"github.com/taibuivan/newsdesk/pkg/slice"
	"github.com/taibuivan/newsdesk/pkg/slug"
)

const (
	// EntityClass identifies news in the route registry.
	EntityClass = "news"

	// ResourceKey identifies news in the trash.
	ResourceKey = "news"

	// SecurityContext is the permission context of every news operation.
	SecurityContext = "news.news"
)

// # Collaborators

// RouteManager is the part of [route.Manager] the service needs.
type RouteManager interface {
	GeneratePath(context context.Context, entityClass, entityID, locale, path string) (string, error)
	CreateOrUpdateByAttributes(context context.Context, entityClass, entityID, locale, path string) (*route.Route, error)
	RemoveByEntity(context context.Context, entityClass, entityID, locale string) ([]*route.Route, error)
	Resolve(context context.Context, path, locale string) (*route.Route, error)
}

// TrashStore keeps snapshots of deleted entities.
type TrashStore interface {
	Store(context context.Context, resourceKey, resourceID, title, locale string, payload any, actor string) (*trash.Item, error)
	Remove(context context.Context, id int64) error
}

// PageCache holds rendered website responses by locale and path.
type PageCache interface {
	Get(context context.Context, locale, path string) ([]byte, bool, error)
	Set(context context.Context, locale, path string, body []byte) error
	Delete(context context.Context, locale, path string) error
}

// # Service Layer

// Service implements the news operations of the admin API and the website
// lookup. Every admin operation is checked against [SecurityContext].
type Service struct {
	repo        Repository
	routes      RouteManager
	trash       TrashStore
	cache       PageCache
	checker     *sec.Checker
	logger      *slog.Logger
	routePrefix string
	now         func() time.Time
}

// NewService wires the news service. routePrefix is prepended to
// generated route paths, e.g. "/news".
func NewService(repo Repository, routes RouteManager, trash TrashStore, cache PageCache, checker *sec.Checker, logger *slog.Logger, routePrefix string) *Service {
	return &Service{
		repo:        repo,
		routes:      routes,
		trash:       trash,
		cache:       cache,
		checker:     checker,
		logger:      logger,
		routePrefix: routePrefix,
		now:         time.Now,
	}
}

// authorize checks the caller's claims for permission in locale.
func (service *Service) authorize(context context.Context, locale string, permission sec.Permission) error {
	claims := ctxutil.GetAuthUser(context)
	return service.checker.CheckPermission(claims, sec.Condition{Context: SecurityContext, Locale: locale}, permission)
}

// # Lookups

// List returns a page of news in filter.Locale.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*ListItem, int, error) {
	if err := service.authorize(context, filter.Locale, sec.PermissionView); err != nil {
		return nil, 0, err
	}
	return service.repo.ListNews(context, filter, limit, offset)
}

// Types returns the selectable news types.
func (service *Service) Types(context context.Context) ([]TypeChoice, error) {
	if err := service.authorize(context, "", sec.PermissionView); err != nil {
		return nil, err
	}
	return Types(), nil
}

// Get loads a news in locale.
func (service *Service) Get(context context.Context, id int64, locale string) (*News, error) {
	if err := service.authorize(context, locale, sec.PermissionView); err != nil {
		return nil, err
	}

	entity, err := service.load(context, id)
	if err != nil {
		return nil, err
	}
	return entity.SetLocale(locale), nil
}

func (service *Service) load(context context.Context, id int64) (*News, error) {
	entity, err := service.repo.GetNews(context, id)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("News")
	}
	return entity, err
}

// # Management

/*
Create stores a new news with one translation in locale.

Description: The title is required. Without a route path one is built
from the title under the configured prefix; either way the path is made
unique before the entity is saved and registered afterwards.

Returns:
  - *News: The saved entity in locale
  - error: Validation, permission or persistence errors
*/
func (service *Service) Create(context context.Context, locale string, input UpdateInput) (*News, error) {
	if err := service.authorize(context, locale, sec.PermissionAdd); err != nil {
		return nil, err
	}

	input.sanitize()
	if err := input.validate(true); err != nil {
		return nil, err
	}

	entity := New().SetLocale(locale)
	input.apply(entity)

	// Route path
	path, err := service.routes.GeneratePath(context, EntityClass, "", locale, service.requestedPath(entity, input.RoutePath))
	if err != nil {
		return nil, err
	}
	entity.SetRoutePath(path)
	service.stamp(context, entity, locale)

	if err := service.repo.CreateNews(context, entity); err != nil {
		return nil, err
	}

	if err := service.registerRoutes(context, entity, locale); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "news_created",
		slog.Int64("news_id", entity.ID),
		slog.String("locale", locale),
		slog.String("route_path", path),
	)
	return entity, nil
}

/*
Update writes the supplied fields into locale.

Description: Absent fields stay untouched. A supplied version that differs
from the stored one is rejected with 409. When the route path changes the
route is moved and both cached pages are dropped.
*/
func (service *Service) Update(context context.Context, id int64, locale string, input UpdateInput) (*News, error) {
	if err := service.authorize(context, locale, sec.PermissionEdit); err != nil {
		return nil, err
	}

	input.sanitize()
	if err := input.validate(false); err != nil {
		return nil, err
	}

	entity, err := service.load(context, id)
	if err != nil {
		return nil, err
	}
	if input.Version != nil && *input.Version != entity.Version {
		return nil, apperr.Conflict("News was modified by someone else; reload and try again")
	}

	entity.SetLocale(locale)
	previousPath := entity.RoutePath()
	previousType, previousImages := entity.Type, slices.Clone(entity.Images)
	input.apply(entity)

	if entity.Title() == "" {
		return nil, validateTitle(entity.Title())
	}

	// Route path: explicit, kept, or generated for a new translation
	if input.RoutePath != nil || previousPath == "" {
		path, err := service.routes.GeneratePath(context, EntityClass, entityID(entity), locale, service.requestedPath(entity, input.RoutePath))
		if err != nil {
			return nil, err
		}
		entity.SetRoutePath(path)
	}
	service.stamp(context, entity, locale)

	if err := service.repo.UpdateNews(context, entity); err != nil {
		return nil, err
	}

	if err := service.registerRoutes(context, entity, locale); err != nil {
		return nil, err
	}
	service.invalidate(context, locale, previousPath, entity.RoutePath())

	// Type and images are shared, so every locale's page is stale
	if entity.Type != previousType || !slices.Equal(entity.Images, previousImages) {
		for _, translation := range entity.Translations() {
			service.invalidate(context, translation.Locale(), translation.RoutePath)
		}
	}

	service.logger.InfoContext(context, "news_updated",
		slog.Int64("news_id", entity.ID),
		slog.String("locale", locale),
		slog.Int("version", entity.Version),
	)
	return entity, nil
}

// Publish makes locale live. PublishedAt is stamped unless already set.
func (service *Service) Publish(context context.Context, id int64, locale string) (*News, error) {
	return service.setPublished(context, id, locale, true)
}

// Unpublish takes locale offline and clears PublishedAt.
func (service *Service) Unpublish(context context.Context, id int64, locale string) (*News, error) {
	return service.setPublished(context, id, locale, false)
}

func (service *Service) setPublished(context context.Context, id int64, locale string, published bool) (*News, error) {
	if err := service.authorize(context, locale, sec.PermissionLive); err != nil {
		return nil, err
	}

	entity, err := service.load(context, id)
	if err != nil {
		return nil, err
	}
	if _, ok := entity.Translation(locale); !ok {
		return nil, apperr.NotFound("News translation")
	}

	entity.SetLocale(locale)
	entity.SetPublished(published)

	switch {
	case !published:
		entity.SetPublishedAt(nil)
	case entity.PublishedAt() == nil:
		now := service.now()
		entity.SetPublishedAt(&now)
	}
	service.stamp(context, entity, locale)

	if err := service.repo.UpdateNews(context, entity); err != nil {
		return nil, err
	}
	service.invalidate(context, locale, entity.RoutePath())

	service.logger.InfoContext(context, "news_published_state_changed",
		slog.Int64("news_id", entity.ID),
		slog.String("locale", locale),
		slog.Bool("published", published),
	)
	return entity, nil
}

/*
Copy duplicates the news as a new entity.

Description: Every translation is carried over unpublished, with its route
path made unique for the new entity. The copy is returned in locale.
*/
func (service *Service) Copy(context context.Context, id int64, locale string) (*News, error) {
	if err := service.authorize(context, locale, sec.PermissionAdd); err != nil {
		return nil, err
	}

	source, err := service.load(context, id)
	if err != nil {
		return nil, err
	}

	duplicate := FromSnapshot(source.Snapshot())
	duplicate.ID = 0

	for _, code := range duplicate.AvailableLocales() {
		duplicate.SetLocale(code)
		duplicate.SetPublished(false)
		duplicate.SetPublishedAt(nil)

		path, err := service.routes.GeneratePath(context, EntityClass, "", code, service.requestedPath(duplicate, pointer.To(duplicate.RoutePath())))
		if err != nil {
			return nil, err
		}
		duplicate.SetRoutePath(path)

		translation, _ := duplicate.Translation(code)
		translation.CreatedAt = time.Time{}
		service.stamp(context, duplicate, code)
	}

	if err := service.repo.CreateNews(context, duplicate); err != nil {
		return nil, err
	}
	if err := service.registerRoutes(context, duplicate, duplicate.AvailableLocales()...); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "news_copied",
		slog.Int64("source_id", source.ID),
		slog.Int64("news_id", duplicate.ID),
	)
	return duplicate.SetLocale(locale), nil
}

/*
CopyLocale copies the src translation of a news into every dest locale.

Description: Destination records are overwritten wholesale, the SEO and
excerpt records included. The source stays src for the whole batch. Each
destination gets its own unique route path. The entity is returned in the
last destination locale.

Returns:
  - error: 404 when src has no translation; 403 when any destination is
    not editable by the caller
*/
func (service *Service) CopyLocale(context context.Context, id int64, src string, dests []string) (*News, error) {
	if err := service.authorize(context, src, sec.PermissionView); err != nil {
		return nil, err
	}
	for _, dest := range dests {
		if err := service.authorize(context, dest, sec.PermissionEdit); err != nil {
			return nil, err
		}
	}

	entity, err := service.load(context, id)
	if err != nil {
		return nil, err
	}
	if _, ok := entity.Translation(src); !ok {
		return nil, apperr.NotFound("News translation")
	}

	targets := slice.Filter(dests, func(dest string) bool { return dest != src })
	stale := make(map[string]string, len(targets))

	for _, dest := range targets {
		if previous, ok := entity.Translation(dest); ok {
			stale[dest] = previous.RoutePath
		}

		entity.SetLocale(src).CopyToLocale(dest)

		path, err := service.routes.GeneratePath(context, EntityClass, entityID(entity), dest, service.requestedPath(entity, pointer.To(entity.RoutePath())))
		if err != nil {
			return nil, err
		}
		entity.SetRoutePath(path)
		service.stamp(context, entity, dest)
	}

	if len(targets) == 0 {
		return entity.SetLocale(src), nil
	}

	if err := service.repo.UpdateNews(context, entity); err != nil {
		return nil, err
	}
	if err := service.registerRoutes(context, entity, targets...); err != nil {
		return nil, err
	}

	for dest, path := range stale {
		service.invalidate(context, dest, path)
	}

	service.logger.InfoContext(context, "news_locale_copied",
		slog.Int64("news_id", entity.ID),
		slog.String("src", src),
		slog.Any("dest", targets),
	)
	return entity.SetLocale(targets[len(targets)-1]), nil
}

/*
Delete moves the news to the trash.

Description: A snapshot is stored in the trash first, then the entity is
deleted and its routes for all locales are removed. A failed delete takes
the snapshot back out of the trash.
*/
func (service *Service) Delete(context context.Context, id int64, locale string) error {
	if err := service.authorize(context, locale, sec.PermissionDelete); err != nil {
		return err
	}

	entity, err := service.load(context, id)
	if err != nil {
		return err
	}
	entity.SetLocale(locale)

	item, err := service.trash.Store(context, ResourceKey, entityID(entity), entity.Title(), locale, entity.Snapshot(), ctxutil.ActorID(context))
	if err != nil {
		return err
	}

	if err := service.repo.DeleteNews(context, id); err != nil {
		if removeErr := service.trash.Remove(context, item.ID); removeErr != nil {
			service.logger.ErrorContext(context, "news_trash_rollback_failed",
				slog.Int64("news_id", id),
				slog.Int64("trash_id", item.ID),
				slog.Any("error", removeErr),
			)
		}
		if dberr.IsNotFound(err) {
			return apperr.NotFound("News")
		}
		return err
	}

	removed, err := service.routes.RemoveByEntity(context, EntityClass, entityID(entity), "")
	if err != nil {
		return err
	}
	for _, r := range removed {
		service.invalidate(context, r.Locale, r.Path)
	}

	service.logger.InfoContext(context, "news_deleted",
		slog.Int64("news_id", id),
		slog.Int("routes_removed", len(removed)),
	)
	return nil
}

// Restore recreates a news from its trash snapshot under the original id
// and registers its routes again. It implements [trash.Restorer].
func (service *Service) Restore(context context.Context, payload json.RawMessage) (string, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return "", apperr.Unprocessable("Trash payload is not a news snapshot")
	}

	entity := FromSnapshot(snapshot)
	if entity.ID <= 0 {
		return "", apperr.Unprocessable("Trash payload has no news id")
	}
	if err := service.authorize(context, "", sec.PermissionAdd); err != nil {
		return "", err
	}

	locales := entity.AvailableLocales()
	for _, code := range locales {
		entity.SetLocale(code)
		if entity.RoutePath() == "" {
			continue
		}

		path, err := service.routes.GeneratePath(context, EntityClass, entityID(entity), code, entity.RoutePath())
		if err != nil {
			return "", err
		}
		entity.SetRoutePath(path)
	}

	if err := service.repo.CreateNews(context, entity); err != nil {
		return "", err
	}
	if err := service.registerRoutes(context, entity, locales...); err != nil {
		return "", err
	}

	service.logger.InfoContext(context, "news_restored", slog.Int64("news_id", entity.ID))
	return entityID(entity), nil
}

// # Website

/*
Website renders the live news behind path in locale.

Description: Rendered bodies are cached per locale and path. On a miss the
route is resolved, the entity loaded and served only when the route belongs
to a news and the locale is published with a publish date not in the
future. Cache failures are logged and bypassed.

Returns:
  - []byte: The JSON body {"data": View}
  - error: 404 for unknown, foreign or unpublished routes
*/
func (service *Service) Website(context context.Context, path, locale string) ([]byte, error) {
	path = route.NormalizePath(path)
	if path == "" {
		return nil, apperr.NotFound("News")
	}

	body, found, err := service.cache.Get(context, locale, path)
	if err != nil {
		service.logger.WarnContext(context, "website_cache_read_failed", slog.String("path", path), slog.Any("error", err))
	}
	if found {
		return body, nil
	}

	resolved, err := service.routes.Resolve(context, path, locale)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.NotFound("News")
		}
		return nil, err
	}
	if resolved.EntityClass != EntityClass {
		return nil, apperr.NotFound("News")
	}

	id, err := strconv.ParseInt(resolved.EntityID, 10, 64)
	if err != nil {
		return nil, apperr.NotFound("News")
	}

	entity, err := service.load(context, id)
	if err != nil {
		return nil, err
	}
	entity.SetLocale(locale)

	if !entity.IsLive(service.now()) {
		return nil, apperr.NotFound("News")
	}

	body, err = json.Marshal(map[string]any{"data": entity})
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("news: render %d: %w", id, err))
	}

	if err := service.cache.Set(context, locale, path, body); err != nil {
		service.logger.WarnContext(context, "website_cache_write_failed", slog.String("path", path), slog.Any("error", err))
	}
	return body, nil
}

// # Helpers

// requestedPath is the explicit path when one was given, otherwise the
// prefix joined with the slugified title.
func (service *Service) requestedPath(entity *News, explicit *string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}

	titleSlug := slug.From(entity.Title())
	if titleSlug == "" {
		titleSlug = EntityClass
	}
	return service.routePrefix + "/" + titleSlug
}

// registerRoutes records the route of each locale that has a path.
func (service *Service) registerRoutes(context context.Context, entity *News, locales ...string) error {
	active := entity.Locale()
	defer entity.SetLocale(active)

	for _, code := range locales {
		entity.SetLocale(code)
		if entity.RoutePath() == "" {
			continue
		}

		registered, err := service.routes.CreateOrUpdateByAttributes(context, EntityClass, entityID(entity), code, entity.RoutePath())
		if err != nil {
			return err
		}
		if registered.Path != entity.RoutePath() {
			service.logger.WarnContext(context, "news_route_diverged",
				slog.Int64("news_id", entity.ID),
				slog.String("locale", code),
				slog.String("requested", entity.RoutePath()),
				slog.String("registered", registered.Path),
			)
		}
	}
	return nil
}

// invalidate drops cached website pages for paths in locale.
func (service *Service) invalidate(context context.Context, locale string, paths ...string) {
	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true

		if err := service.cache.Delete(context, locale, path); err != nil {
			service.logger.WarnContext(context, "website_cache_invalidate_failed",
				slog.String("locale", locale),
				slog.String("path", path),
				slog.Any("error", err),
			)
		}
	}
}

// stamp records the caller on the locale's translation.
func (service *Service) stamp(context context.Context, entity *News, locale string) {
	if translation, ok := entity.Translation(locale); ok {
		translation.Stamp(ctxutil.ActorID(context), service.now())
	}
}

func entityID(entity *News) string {
	return strconv.FormatInt(entity.ID, 10)
}

func validateTitle(title string) error {
	input := UpdateInput{Title: &title}
	return input.validate(true)
}
