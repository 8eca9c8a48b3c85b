// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package trash

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on system.trashitem.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed trash store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	t := schema.SystemTrashItem
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s`,
		t.Table, t.ResourceKey, t.ResourceID, t.Title, t.Locale, t.Payload, t.TrashedBy,
		t.ID, t.TrashedAt,
	)

	err := repository.pool.QueryRow(context, query,
		item.ResourceKey, item.ResourceID, item.Title, item.Locale, []byte(item.Payload), item.TrashedBy,
	).Scan(&item.ID, &item.TrashedAt)
	return dberr.Wrap(err, "create_trash_item")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error) {
	t := schema.SystemTrashItem
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE ($1 = '' OR %s = $1)
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		t.ID, t.ResourceKey, t.ResourceID, t.Title, t.Locale, t.TrashedBy, t.TrashedAt,
		t.Table,
		t.ResourceKey,
		t.TrashedAt, t.ID,
	)

	rows, err := repository.pool.Query(context, query, filter.ResourceKey, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_trash_items")
	}
	defer rows.Close()

	var items []*Item
	total := 0
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID, &item.ResourceKey, &item.ResourceID, &item.Title,
			&item.Locale, &item.TrashedBy, &item.TrashedAt, &total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_trash_item")
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_trash_items")
	}
	return items, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Item, error) {
	t := schema.SystemTrashItem
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = $1`,
		t.ID, t.ResourceKey, t.ResourceID, t.Title, t.Locale, t.Payload, t.TrashedBy, t.TrashedAt,
		t.Table, t.ID,
	)

	var item Item
	var payload []byte
	err := repository.pool.QueryRow(context, query, id).Scan(
		&item.ID, &item.ResourceKey, &item.ResourceID, &item.Title,
		&item.Locale, &payload, &item.TrashedBy, &item.TrashedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_trash_item")
	}
	item.Payload = payload
	return &item, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	t := schema.SystemTrashItem
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_trash_item")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteOlderThan(context context.Context, cutoff time.Time) (int64, error) {
	t := schema.SystemTrashItem
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s < $1`, t.Table, t.TrashedAt)

	tag, err := repository.pool.Exec(context, query, cutoff)
	if err != nil {
		return 0, dberr.Wrap(err, "purge_trash_items")
	}
	return tag.RowsAffected(), nil
}
