// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package trash

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/ctxutil"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/sec"
)

type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*Item
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{items: make(map[int64]*Item)}
}

func (m *memoryRepository) Create(_ context.Context, item *Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	item.ID = m.nextID
	if item.TrashedAt.IsZero() {
		item.TrashedAt = time.Now()
	}
	clone := *item
	m.items[item.ID] = &clone
	return nil
}

func (m *memoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Item, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*Item
	for _, item := range m.items {
		if filter.ResourceKey == "" || item.ResourceKey == filter.ResourceKey {
			all = append(all, item)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := len(all)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	return all[offset:end], total, nil
}

func (m *memoryRepository) FindByID(_ context.Context, id int64) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (m *memoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memoryRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for id, item := range m.items {
		if item.TrashedAt.Before(cutoff) {
			delete(m.items, id)
			count++
		}
	}
	return count, nil
}

type restorerFunc func(ctx context.Context, payload json.RawMessage) (string, error)

func (f restorerFunc) Restore(ctx context.Context, payload json.RawMessage) (string, error) {
	return f(ctx, payload)
}

func newTestManager() (*Manager, *memoryRepository) {
	repo := newMemoryRepository()
	return NewManager(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestStore_EncodesPayload(t *testing.T) {
	manager, repo := newTestManager()

	item, err := manager.Store(context.Background(), "news", "7", "Hello", "en", map[string]int{"id": 7}, "u-1")
	require.NoError(t, err)

	stored := repo.items[item.ID]
	assert.JSONEq(t, `{"id":7}`, string(stored.Payload))
	assert.Equal(t, "u-1", stored.TrashedBy)
}

func TestRestore_DispatchesAndRemoves(t *testing.T) {
	manager, repo := newTestManager()
	ctx := context.Background()

	var received string
	manager.Register("news", restorerFunc(func(_ context.Context, payload json.RawMessage) (string, error) {
		received = string(payload)
		return "7", nil
	}))

	item, err := manager.Store(ctx, "news", "7", "Hello", "en", map[string]int{"id": 7}, "")
	require.NoError(t, err)

	result, err := manager.Restore(ctx, item.ID)
	require.NoError(t, err)

	assert.Equal(t, &RestoreResult{ResourceKey: "news", ResourceID: "7"}, result)
	assert.JSONEq(t, `{"id":7}`, received)
	assert.Empty(t, repo.items)
}

func TestRestore_FailureKeepsItem(t *testing.T) {
	manager, repo := newTestManager()
	ctx := context.Background()

	manager.Register("news", restorerFunc(func(context.Context, json.RawMessage) (string, error) {
		return "", apperr.Conflict("taken")
	}))

	item, err := manager.Store(ctx, "news", "7", "", "", struct{}{}, "")
	require.NoError(t, err)

	_, err = manager.Restore(ctx, item.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Len(t, repo.items, 1)
}

func TestRestore_UnknownResource(t *testing.T) {
	manager, _ := newTestManager()
	ctx := context.Background()

	item, err := manager.Store(ctx, "page", "1", "", "", struct{}{}, "")
	require.NoError(t, err)

	_, err = manager.Restore(ctx, item.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnprocessable))

	_, err = manager.Restore(ctx, 999)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestRemove(t *testing.T) {
	manager, _ := newTestManager()
	ctx := context.Background()

	item, err := manager.Store(ctx, "news", "1", "", "", struct{}{}, "")
	require.NoError(t, err)

	require.NoError(t, manager.Remove(ctx, item.ID))
	assert.True(t, apperr.HasCode(manager.Remove(ctx, item.ID), apperr.CodeNotFound))
}

func TestPurge(t *testing.T) {
	manager, repo := newTestManager()
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return now }

	require.NoError(t, repo.Create(ctx, &Item{ResourceKey: "news", TrashedAt: now.Add(-40 * 24 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &Item{ResourceKey: "news", TrashedAt: now.Add(-time.Hour)}))

	require.NoError(t, manager.PurgeJob(720*time.Hour)(ctx))
	assert.Len(t, repo.items, 1)

	purged, err := manager.Purge(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func TestHandler_RestoreRequiresEditor(t *testing.T) {
	manager, _ := newTestManager()
	manager.Register("news", restorerFunc(func(context.Context, json.RawMessage) (string, error) {
		return "1", nil
	}))
	item, err := manager.Store(context.Background(), "news", "1", "", "", struct{}{}, "")
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Mount("/trash", NewHandler(manager).Routes())

	serve := func(role sec.UserRole, method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req = req.WithContext(ctxutil.WithAuthUser(req.Context(), &sec.AuthClaims{UserID: "u", Role: string(role)}))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusForbidden, serve(sec.RoleAuthor, http.MethodGet, "/trash").Code)
	assert.Equal(t, http.StatusOK, serve(sec.RoleEditor, http.MethodGet, "/trash").Code)
	assert.Equal(t, http.StatusForbidden, serve(sec.RoleEditor, http.MethodDelete, "/trash/1").Code)

	rec := serve(sec.RoleEditor, http.MethodPost, "/trash/"+strconv.FormatInt(item.ID, 10)+"/restore")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"resource_key":"news","resource_id":"1"}}`, rec.Body.String())
}
