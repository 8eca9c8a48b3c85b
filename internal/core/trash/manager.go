// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package trash

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
)

// RestoreResult tells the caller where a restored resource lives again.
type RestoreResult struct {
	ResourceKey string `json:"resource_key"`
	ResourceID  string `json:"resource_id"`
}

// Manager stores, lists, restores and purges trash items.
type Manager struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time

	mu        sync.RWMutex
	restorers map[string]Restorer
}

// NewManager constructs a trash manager with no restorers registered.
func NewManager(repo Repository, logger *slog.Logger) *Manager {
	return &Manager{
		repo:      repo,
		logger:    logger,
		now:       time.Now,
		restorers: make(map[string]Restorer),
	}
}

// Register makes restorer responsible for items stored under resourceKey.
func (manager *Manager) Register(resourceKey string, restorer Restorer) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.restorers[resourceKey] = restorer
}

func (manager *Manager) restorer(resourceKey string) (Restorer, bool) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	restorer, ok := manager.restorers[resourceKey]
	return restorer, ok
}

// Store serialises payload as JSON and records it as a trash item.
func (manager *Manager) Store(context context.Context, resourceKey, resourceID, title, locale string, payload any, actor string) (*Item, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("trash: encode %s/%s: %w", resourceKey, resourceID, err))
	}

	item := &Item{
		ResourceKey: resourceKey,
		ResourceID:  resourceID,
		Title:       title,
		Locale:      locale,
		Payload:     raw,
		TrashedBy:   actor,
	}
	if err := manager.repo.Create(context, item); err != nil {
		return nil, err
	}

	manager.logger.InfoContext(context, "trash_item_stored",
		slog.Int64("trash_id", item.ID),
		slog.String("resource_key", resourceKey),
		slog.String("resource_id", resourceID),
	)
	return item, nil
}

// List returns a page of items.
func (manager *Manager) List(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error) {
	return manager.repo.List(context, filter, limit, offset)
}

// Get returns one item.
func (manager *Manager) Get(context context.Context, id int64) (*Item, error) {
	item, err := manager.repo.FindByID(context, id)
	if dberr.IsNotFound(err) {
		return nil, apperr.NotFound("Trash item")
	}
	return item, err
}

// Remove deletes an item for good.
func (manager *Manager) Remove(context context.Context, id int64) error {
	err := manager.repo.Delete(context, id)
	if dberr.IsNotFound(err) {
		return apperr.NotFound("Trash item")
	}
	if err != nil {
		return err
	}

	manager.logger.InfoContext(context, "trash_item_removed", slog.Int64("trash_id", id))
	return nil
}

// Restore hands the item's payload to the restorer registered for its
// resource key and drops the item once the resource is back.
func (manager *Manager) Restore(context context.Context, id int64) (*RestoreResult, error) {
	item, err := manager.Get(context, id)
	if err != nil {
		return nil, err
	}

	restorer, ok := manager.restorer(item.ResourceKey)
	if !ok {
		return nil, apperr.Unprocessable(fmt.Sprintf("Resources of type %q cannot be restored", item.ResourceKey))
	}

	resourceID, err := restorer.Restore(context, item.Payload)
	if err != nil {
		return nil, err
	}

	if err := manager.repo.Delete(context, item.ID); err != nil {
		return nil, err
	}

	manager.logger.InfoContext(context, "trash_item_restored",
		slog.Int64("trash_id", item.ID),
		slog.String("resource_key", item.ResourceKey),
		slog.String("resource_id", resourceID),
	)
	return &RestoreResult{ResourceKey: item.ResourceKey, ResourceID: resourceID}, nil
}

// Purge deletes items trashed more than olderThan ago.
func (manager *Manager) Purge(context context.Context, olderThan time.Duration) (int64, error) {
	cutoff := manager.now().Add(-olderThan)

	count, err := manager.repo.DeleteOlderThan(context, cutoff)
	if err != nil {
		return 0, err
	}

	manager.logger.InfoContext(context, "trash_purged",
		slog.Int64("count", count),
		slog.Time("cutoff", cutoff),
	)
	return count, nil
}

// PurgeJob adapts [Manager.Purge] to the scheduler's job signature.
func (manager *Manager) PurgeJob(olderThan time.Duration) func(context.Context) error {
	return func(context context.Context) error {
		_, err := manager.Purge(context, olderThan)
		return err
	}
}
