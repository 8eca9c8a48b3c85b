// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsdesk/internal/core/route"
	"github.com/taibuivan/newsdesk/internal/core/trash"
	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/ctxutil"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/sec"
	"github.com/taibuivan/newsdesk/pkg/pointer"
)

// # Fakes

type memoryNewsRepository struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]Snapshot
	deleteErr error
}

func newMemoryNewsRepository() *memoryNewsRepository {
	return &memoryNewsRepository{rows: make(map[int64]Snapshot)}
}

func (m *memoryNewsRepository) ListNews(_ context.Context, filter Filter, limit, offset int) ([]*ListItem, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var items []*ListItem
	for _, id := range ids {
		entity := FromSnapshot(m.rows[id]).SetLocale(filter.Locale)
		if filter.Type != "" && entity.Type != filter.Type {
			continue
		}
		if filter.Published != nil && entity.IsPublished() != *filter.Published {
			continue
		}
		items = append(items, &ListItem{
			ID:               entity.ID,
			Type:             entity.Type,
			Locale:           filter.Locale,
			Title:            entity.Title(),
			RoutePath:        entity.RoutePath(),
			Published:        entity.IsPublished(),
			AvailableLocales: entity.AvailableLocales(),
		})
	}

	total := len(items)
	offset = min(offset, total)
	return items[offset:min(offset+limit, total)], total, nil
}

func (m *memoryNewsRepository) GetNews(_ context.Context, id int64) (*News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot, ok := m.rows[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return FromSnapshot(snapshot), nil
}

func (m *memoryNewsRepository) CreateNews(_ context.Context, entity *News) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entity.ID == 0 {
		m.nextID++
		entity.ID = m.nextID
	} else if _, exists := m.rows[entity.ID]; exists {
		return apperr.Conflict("A record with the same unique value already exists")
	}
	m.nextID = max(m.nextID, entity.ID)

	entity.Version = 1
	m.rows[entity.ID] = entity.Snapshot()
	return nil
}

func (m *memoryNewsRepository) UpdateNews(_ context.Context, entity *News) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.rows[entity.ID]
	if !ok {
		return dberr.ErrNotFound
	}
	if stored.Version != entity.Version {
		return apperr.Conflict("News was modified by someone else; reload and try again")
	}

	entity.Version++
	m.rows[entity.ID] = entity.Snapshot()
	return nil
}

func (m *memoryNewsRepository) DeleteNews(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteErr != nil {
		return m.deleteErr
	}

	if _, ok := m.rows[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memoryRouteRepository struct {
	mu     sync.Mutex
	nextID int64
	routes []*route.Route
}

func (m *memoryRouteRepository) FindByPath(_ context.Context, locale, path string) (*route.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.routes {
		if r.Locale == locale && r.Path == path {
			clone := *r
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryRouteRepository) FindByEntity(_ context.Context, entityClass, entityID, locale string) ([]*route.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*route.Route
	for _, r := range m.routes {
		if r.EntityClass == entityClass && r.EntityID == entityID && (locale == "" || r.Locale == locale) {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memoryRouteRepository) Create(_ context.Context, r *route.Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	r.ID = m.nextID
	clone := *r
	m.routes = append(m.routes, &clone)
	return nil
}

func (m *memoryRouteRepository) UpdatePath(_ context.Context, id int64, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.routes {
		if r.ID == id {
			r.Path = path
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (m *memoryRouteRepository) DeleteByEntity(_ context.Context, entityClass, entityID, locale string) ([]*route.Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var kept, removed []*route.Route
	for _, r := range m.routes {
		if r.EntityClass == entityClass && r.EntityID == entityID && (locale == "" || r.Locale == locale) {
			removed = append(removed, r)
			continue
		}
		kept = append(kept, r)
	}
	m.routes = kept
	return removed, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (m *memoryCache) key(locale, path string) string { return locale + ":" + path }

func (m *memoryCache) Get(_ context.Context, locale, path string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.entries[m.key(locale, path)]
	return body, ok, nil
}

func (m *memoryCache) Set(_ context.Context, locale, path string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.key(locale, path)] = body
	return nil
}

func (m *memoryCache) Delete(_ context.Context, locale, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, m.key(locale, path))
	return nil
}

type recordingTrash struct {
	items []*trash.Item
}

func (r *recordingTrash) Store(_ context.Context, resourceKey, resourceID, title, locale string, payload any, actor string) (*trash.Item, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	item := &trash.Item{
		ID:          int64(len(r.items) + 1),
		ResourceKey: resourceKey,
		ResourceID:  resourceID,
		Title:       title,
		Locale:      locale,
		Payload:     raw,
		TrashedBy:   actor,
	}
	r.items = append(r.items, item)
	return item, nil
}

func (r *recordingTrash) Remove(_ context.Context, id int64) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Trash item")
}

// # Fixture

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	service *Service
	repo    *memoryNewsRepository
	routes  *route.Manager
	cache   *memoryCache
	trash   *recordingTrash
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &fixture{
		repo:   newMemoryNewsRepository(),
		routes: route.NewManager(&memoryRouteRepository{}, logger),
		cache:  &memoryCache{entries: make(map[string][]byte)},
		trash:  &recordingTrash{},
	}
	f.service = NewService(f.repo, f.routes, f.trash, f.cache, sec.NewChecker(), logger, "/news")
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func contextAs(role sec.UserRole, locales ...string) context.Context {
	return ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{
		UserID:  "user-1",
		Role:    string(role),
		Locales: locales,
	})
}

func (f *fixture) create(t *testing.T, title string) *News {
	t.Helper()
	created, err := f.service.Create(contextAs(sec.RoleAdmin), "en", UpdateInput{Title: pointer.To(title)})
	require.NoError(t, err)
	return created
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, code), "want %s, got %v", code, err)
}

// # Create

func TestCreate_GeneratesRouteFromTitle(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)

	created, err := f.service.Create(ctx, "en", UpdateInput{
		Title: pointer.To("Hello World"),
		Text:  pointer.To("<p>Body</p><script>alert(1)</script>"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "/news/hello-world", created.RoutePath())
	assert.Equal(t, "<p>Body</p>", created.Text())

	translation, ok := created.Translation("en")
	require.True(t, ok)
	assert.Equal(t, "user-1", translation.CreatedBy)
	assert.Equal(t, fixedNow, translation.CreatedAt)

	resolved, err := f.routes.Resolve(ctx, "/news/hello-world", "en")
	require.NoError(t, err)
	assert.Equal(t, EntityClass, resolved.EntityClass)
	assert.Equal(t, "1", resolved.EntityID)
}

func TestCreate_ResolvesPathConflicts(t *testing.T) {
	f := newFixture(t)

	f.create(t, "Hello World")
	second := f.create(t, "Hello World")

	assert.Equal(t, "/news/hello-world-1", second.RoutePath())
}

func TestCreate_ExplicitPathIsNormalised(t *testing.T) {
	f := newFixture(t)

	created, err := f.service.Create(contextAs(sec.RoleAdmin), "en", UpdateInput{
		Title:     pointer.To("Hello"),
		RoutePath: pointer.To("Press/Über uns/"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/press/uber-uns", created.RoutePath())
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)

	_, err := f.service.Create(ctx, "en", UpdateInput{})
	assertCode(t, err, apperr.CodeValidation)

	_, err = f.service.Create(ctx, "en", UpdateInput{Title: pointer.To("<b></b>")})
	assertCode(t, err, apperr.CodeValidation)

	_, err = f.service.Create(ctx, "en", UpdateInput{Title: pointer.To("x"), Type: pointer.To("podcast")})
	assertCode(t, err, apperr.CodeValidation)

	_, err = f.service.Create(ctx, "en", UpdateInput{Title: pointer.To("x"), URL: pointer.To("ftp://example.com")})
	assertCode(t, err, apperr.CodeValidation)
}

func TestCreate_Permissions(t *testing.T) {
	f := newFixture(t)
	input := UpdateInput{Title: pointer.To("Hello")}

	_, err := f.service.Create(context.Background(), "en", input)
	assertCode(t, err, apperr.CodeUnauthorized)

	_, err = f.service.Create(contextAs(sec.RoleMember), "en", input)
	assertCode(t, err, apperr.CodeForbidden)

	_, err = f.service.Create(contextAs(sec.RoleEditor, "de"), "en", input)
	assertCode(t, err, apperr.CodeForbidden)

	_, err = f.service.Create(contextAs(sec.RoleAuthor, "en"), "en", input)
	assert.NoError(t, err)
}

// # Update

func TestUpdate_AbsentFieldsUntouched(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.Create(contextAs(sec.RoleAdmin), "en", UpdateInput{
		Title:   pointer.To("Hello"),
		Summary: pointer.To("Short"),
	})
	require.NoError(t, err)

	updated, err := f.service.Update(contextAs(sec.RoleAdmin), created.ID, "en", UpdateInput{
		Subtitle: pointer.To("Sub"),
		Ext: &ExtInput{
			Seo:     &SeoInput{Title: pointer.To("SEO"), NoIndex: pointer.To(true)},
			Excerpt: &ExcerptInput{Tags: &[]string{"a", "b"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello", updated.Title())
	assert.Equal(t, "Short", updated.Summary())
	assert.Equal(t, "Sub", updated.Subtitle())
	assert.Equal(t, "/news/hello", updated.RoutePath())
	assert.Equal(t, "SEO", updated.Seo().Current().Title)
	assert.True(t, updated.Seo().Current().NoIndex)
	assert.Equal(t, []string{"a", "b"}, updated.Excerpt().Current().Tags)
	assert.Equal(t, 2, updated.Version)
}

func TestUpdate_VersionMismatch(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")

	_, err := f.service.Update(contextAs(sec.RoleAdmin), created.ID, "en", UpdateInput{
		Title:   pointer.To("Changed"),
		Version: pointer.To(7),
	})
	assertCode(t, err, apperr.CodeConflict)

	_, err = f.service.Update(contextAs(sec.RoleAdmin), created.ID, "en", UpdateInput{
		Title:   pointer.To("Changed"),
		Version: pointer.To(1),
	})
	assert.NoError(t, err)
}

func TestUpdate_NewLocaleNeedsTitle(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")
	ctx := contextAs(sec.RoleAdmin)

	_, err := f.service.Update(ctx, created.ID, "de", UpdateInput{Summary: pointer.To("Kurz")})
	assertCode(t, err, apperr.CodeValidation)

	updated, err := f.service.Update(ctx, created.ID, "de", UpdateInput{Title: pointer.To("Hallo Welt")})
	require.NoError(t, err)
	assert.Equal(t, "/news/hallo-welt", updated.RoutePath())
	assert.Equal(t, []string{"de", "en"}, updated.AvailableLocales())

	resolved, err := f.routes.Resolve(ctx, "/news/hallo-welt", "de")
	require.NoError(t, err)
	assert.Equal(t, "1", resolved.EntityID)
}

func TestUpdate_MovesRouteAndInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")
	ctx := contextAs(sec.RoleAdmin)
	require.NoError(t, f.cache.Set(ctx, "en", "/news/hello", []byte(`{}`)))

	updated, err := f.service.Update(ctx, created.ID, "en", UpdateInput{RoutePath: pointer.To("/news/renamed")})
	require.NoError(t, err)
	assert.Equal(t, "/news/renamed", updated.RoutePath())

	_, found, _ := f.cache.Get(ctx, "en", "/news/hello")
	assert.False(t, found)

	_, err = f.routes.Resolve(ctx, "/news/hello", "en")
	assertCode(t, err, apperr.CodeNotFound)

	resolved, err := f.routes.Resolve(ctx, "/news/renamed", "en")
	require.NoError(t, err)
	assert.Equal(t, "1", resolved.EntityID)
}

func TestUpdate_SharedFieldsInvalidateEveryLocale(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")
	_, err := f.service.CopyLocale(ctx, created.ID, "en", []string{"de"})
	require.NoError(t, err)

	german, _ := f.service.Get(ctx, created.ID, "de")
	require.NoError(t, f.cache.Set(ctx, "en", "/news/hello", []byte(`{}`)))
	require.NoError(t, f.cache.Set(ctx, "de", german.RoutePath(), []byte(`{}`)))

	_, err = f.service.Update(ctx, created.ID, "en", UpdateInput{Subtitle: pointer.To("Sub")})
	require.NoError(t, err)

	_, found, _ := f.cache.Get(ctx, "de", german.RoutePath())
	assert.True(t, found, "locale-only change keeps other locales cached")

	_, err = f.service.Update(ctx, created.ID, "en", UpdateInput{Type: pointer.To("blog")})
	require.NoError(t, err)

	_, found, _ = f.cache.Get(ctx, "de", german.RoutePath())
	assert.False(t, found)
	_, found, _ = f.cache.Get(ctx, "en", "/news/hello")
	assert.False(t, found)

	require.NoError(t, f.cache.Set(ctx, "de", german.RoutePath(), []byte(`{}`)))
	_, err = f.service.Update(ctx, created.ID, "en", UpdateInput{Images: &[]MediaRef{{ID: 5}}})
	require.NoError(t, err)

	_, found, _ = f.cache.Get(ctx, "de", german.RoutePath())
	assert.False(t, found)
}

func TestUpdate_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Update(contextAs(sec.RoleAdmin), 42, "en", UpdateInput{Title: pointer.To("x")})
	assertCode(t, err, apperr.CodeNotFound)
}

// # Publishing

func TestPublish_StampsOnce(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")
	ctx := contextAs(sec.RoleAdmin)

	published, err := f.service.Publish(ctx, created.ID, "en")
	require.NoError(t, err)
	assert.True(t, published.IsPublished())
	require.NotNil(t, published.PublishedAt())
	assert.Equal(t, fixedNow, *published.PublishedAt())

	f.service.now = func() time.Time { return fixedNow.Add(time.Hour) }
	again, err := f.service.Publish(ctx, created.ID, "en")
	require.NoError(t, err)
	assert.Equal(t, fixedNow, *again.PublishedAt())

	unpublished, err := f.service.Unpublish(ctx, created.ID, "en")
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished())
	assert.Nil(t, unpublished.PublishedAt())
}

func TestPublish_MissingTranslation(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")

	_, err := f.service.Publish(contextAs(sec.RoleAdmin), created.ID, "de")
	assertCode(t, err, apperr.CodeNotFound)
	assert.Equal(t, "News translation not found", err.Error())
}

func TestPublish_RequiresLivePermission(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")

	_, err := f.service.Publish(contextAs(sec.RoleAuthor), created.ID, "en")
	assertCode(t, err, apperr.CodeForbidden)
}

// # Copying

func TestCopy_CreatesUnpublishedDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")
	_, err := f.service.Publish(ctx, created.ID, "en")
	require.NoError(t, err)

	duplicate, err := f.service.Copy(ctx, created.ID, "en")
	require.NoError(t, err)

	assert.Equal(t, int64(2), duplicate.ID)
	assert.Equal(t, "Hello", duplicate.Title())
	assert.False(t, duplicate.IsPublished())
	assert.Nil(t, duplicate.PublishedAt())
	assert.Equal(t, "/news/hello-1", duplicate.RoutePath())

	resolved, err := f.routes.Resolve(ctx, "/news/hello-1", "en")
	require.NoError(t, err)
	assert.Equal(t, "2", resolved.EntityID)

	source, err := f.service.Get(ctx, created.ID, "en")
	require.NoError(t, err)
	assert.True(t, source.IsPublished())
}

func TestCopyLocale_CopiesIntoEveryDestination(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created, err := f.service.Create(ctx, "en", UpdateInput{
		Title: pointer.To("Hello"),
		Ext:   &ExtInput{Seo: &SeoInput{Title: pointer.To("SEO Hello")}},
	})
	require.NoError(t, err)

	copied, err := f.service.CopyLocale(ctx, created.ID, "en", []string{"de", "fr"})
	require.NoError(t, err)

	assert.Equal(t, "fr", copied.Locale())
	assert.Equal(t, "Hello", copied.Title())
	assert.Equal(t, "SEO Hello", copied.Seo().Current().Title)
	assert.Equal(t, []string{"de", "en", "fr"}, copied.AvailableLocales())

	for _, code := range []string{"de", "fr"} {
		resolved, err := f.routes.Resolve(ctx, "/news/hello", code)
		require.NoError(t, err, code)
		assert.Equal(t, "1", resolved.EntityID)
	}

	stored, err := f.service.Get(ctx, created.ID, "de")
	require.NoError(t, err)
	assert.Equal(t, "Hello", stored.Title())
}

func TestCopyLocale_Errors(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")

	_, err := f.service.CopyLocale(contextAs(sec.RoleAdmin), created.ID, "it", []string{"de"})
	assertCode(t, err, apperr.CodeNotFound)

	_, err = f.service.CopyLocale(contextAs(sec.RoleEditor, "en"), created.ID, "en", []string{"de"})
	assertCode(t, err, apperr.CodeForbidden)
}

// # Trash

func TestDelete_TrashesAndRemovesRoutes(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")
	_, err := f.service.CopyLocale(ctx, created.ID, "en", []string{"de"})
	require.NoError(t, err)
	require.NoError(t, f.cache.Set(ctx, "de", "/news/hello", []byte(`{}`)))

	require.NoError(t, f.service.Delete(ctx, created.ID, "en"))

	_, err = f.service.Get(ctx, created.ID, "en")
	assertCode(t, err, apperr.CodeNotFound)

	for _, code := range []string{"en", "de"} {
		_, err := f.routes.Resolve(ctx, "/news/hello", code)
		assertCode(t, err, apperr.CodeNotFound)
	}

	_, found, _ := f.cache.Get(ctx, "de", "/news/hello")
	assert.False(t, found)

	require.Len(t, f.trash.items, 1)
	item := f.trash.items[0]
	assert.Equal(t, ResourceKey, item.ResourceKey)
	assert.Equal(t, "1", item.ResourceID)
	assert.Equal(t, "Hello", item.Title)
	assert.Equal(t, "user-1", item.TrashedBy)
}

func TestDelete_FailureTakesSnapshotOutOfTrash(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")

	f.repo.deleteErr = apperr.Internal(errors.New("connection reset"))
	err := f.service.Delete(ctx, created.ID, "en")
	assertCode(t, err, apperr.CodeInternal)
	assert.Empty(t, f.trash.items)

	_, err = f.routes.Resolve(ctx, "/news/hello", "en")
	require.NoError(t, err)

	f.repo.deleteErr = dberr.ErrNotFound
	err = f.service.Delete(ctx, created.ID, "en")
	assertCode(t, err, apperr.CodeNotFound)
	assert.Empty(t, f.trash.items)
}

func TestDelete_RequiresDeletePermission(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "Hello")

	err := f.service.Delete(contextAs(sec.RoleEditor), created.ID, "en")
	assertCode(t, err, apperr.CodeForbidden)
	assert.Empty(t, f.trash.items)
}

func TestRestore_RecreatesEntityAndRoutes(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")
	_, err := f.service.CopyLocale(ctx, created.ID, "en", []string{"de"})
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(ctx, created.ID, "en"))

	restoredID, err := f.service.Restore(ctx, f.trash.items[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(created.ID, 10), restoredID)

	restored, err := f.service.Get(ctx, created.ID, "de")
	require.NoError(t, err)
	assert.Equal(t, "Hello", restored.Title())
	assert.Equal(t, []string{"de", "en"}, restored.AvailableLocales())

	resolved, err := f.routes.Resolve(ctx, "/news/hello", "de")
	require.NoError(t, err)
	assert.Equal(t, restoredID, resolved.EntityID)

	_, err = f.service.Restore(ctx, f.trash.items[0].Payload)
	assertCode(t, err, apperr.CodeConflict)
}

func TestRestore_RejectsForeignPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Restore(contextAs(sec.RoleAdmin), json.RawMessage(`"nope"`))
	assertCode(t, err, apperr.CodeUnprocessable)

	_, err = f.service.Restore(contextAs(sec.RoleAdmin), json.RawMessage(`{"translations":[]}`))
	assertCode(t, err, apperr.CodeUnprocessable)
}

// # Website

func TestWebsite_ServesOnlyLiveNews(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")

	_, err := f.service.Website(context.Background(), "/news/hello", "en")
	assertCode(t, err, apperr.CodeNotFound)

	_, err = f.service.Publish(ctx, created.ID, "en")
	require.NoError(t, err)

	body, err := f.service.Website(context.Background(), "/news/hello/", "en")
	require.NoError(t, err)

	var envelope struct {
		Data View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, created.ID, envelope.Data.ID)
	assert.Equal(t, "Hello", envelope.Data.Title)
	assert.Equal(t, "en", envelope.Data.Locale)

	_, err = f.service.Website(context.Background(), "/news/hello", "de")
	assertCode(t, err, apperr.CodeNotFound)
}

func TestWebsite_UsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")
	_, err := f.service.Publish(ctx, created.ID, "en")
	require.NoError(t, err)

	first, err := f.service.Website(context.Background(), "/news/hello", "en")
	require.NoError(t, err)

	cached, found, _ := f.cache.Get(ctx, "en", "/news/hello")
	require.True(t, found)
	assert.Equal(t, first, cached)

	require.NoError(t, f.repo.DeleteNews(ctx, created.ID))
	second, err := f.service.Website(context.Background(), "/news/hello", "en")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWebsite_FuturePublishDate(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	created := f.create(t, "Hello")

	f.service.now = func() time.Time { return fixedNow.Add(24 * time.Hour) }
	_, err := f.service.Publish(ctx, created.ID, "en")
	require.NoError(t, err)

	f.service.now = func() time.Time { return fixedNow }
	_, err = f.service.Website(context.Background(), "/news/hello", "en")
	assertCode(t, err, apperr.CodeNotFound)
}

func TestWebsite_ForeignRouteClass(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.routes.CreateOrUpdateByAttributes(ctx, "page", "9", "en", "/about")
	require.NoError(t, err)

	_, err = f.service.Website(ctx, "/about", "en")
	assertCode(t, err, apperr.CodeNotFound)
}

// # Listing

func TestList_FiltersByPublishedState(t *testing.T) {
	f := newFixture(t)
	ctx := contextAs(sec.RoleAdmin)
	first := f.create(t, "First")
	f.create(t, "Second")
	_, err := f.service.Publish(ctx, first.ID, "en")
	require.NoError(t, err)

	items, total, err := f.service.List(ctx, Filter{Locale: "en", Published: pointer.To(true)}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "First", items[0].Title)

	_, _, err = f.service.List(context.Background(), Filter{Locale: "en"}, 20, 0)
	assertCode(t, err, apperr.CodeUnauthorized)
}
