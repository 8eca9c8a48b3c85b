// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package route

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on core.route.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed route store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var routeColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
	schema.CoreRoute.ID,
	schema.CoreRoute.Path,
	schema.CoreRoute.Locale,
	schema.CoreRoute.EntityClass,
	schema.CoreRoute.EntityID,
	schema.CoreRoute.CreatedAt,
	schema.CoreRoute.UpdatedAt,
)

func scanRoute(row pgx.Row) (*Route, error) {
	var route Route
	err := row.Scan(
		&route.ID, &route.Path, &route.Locale,
		&route.EntityClass, &route.EntityID,
		&route.CreatedAt, &route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func collectRoutes(rows pgx.Rows) ([]*Route, error) {
	defer rows.Close()

	var routes []*Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

func (repository *PostgresRepository) FindByPath(context context.Context, locale, path string) (*Route, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		routeColumns, schema.CoreRoute.Table,
		schema.CoreRoute.Locale, schema.CoreRoute.Path,
	)

	route, err := scanRoute(repository.pool.QueryRow(context, query, locale, path))
	if err != nil {
		return nil, dberr.Wrap(err, "find_route_by_path")
	}
	return route, nil
}

func (repository *PostgresRepository) FindByEntity(context context.Context, entityClass, entityID, locale string) ([]*Route, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s = $2 AND ($3 = '' OR %s = $3)
		ORDER BY %s`,
		routeColumns, schema.CoreRoute.Table,
		schema.CoreRoute.EntityClass, schema.CoreRoute.EntityID, schema.CoreRoute.Locale,
		schema.CoreRoute.Locale,
	)

	rows, err := repository.pool.Query(context, query, entityClass, entityID, locale)
	if err != nil {
		return nil, dberr.Wrap(err, "find_routes_by_entity")
	}

	routes, err := collectRoutes(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_routes")
	}
	return routes, nil
}

func (repository *PostgresRepository) Create(context context.Context, route *Route) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s`,
		schema.CoreRoute.Table,
		schema.CoreRoute.Path, schema.CoreRoute.Locale, schema.CoreRoute.EntityClass, schema.CoreRoute.EntityID,
		schema.CoreRoute.ID, schema.CoreRoute.CreatedAt, schema.CoreRoute.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, route.Path, route.Locale, route.EntityClass, route.EntityID).
		Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	return dberr.Wrap(err, "create_route")
}

func (repository *PostgresRepository) UpdatePath(context context.Context, id int64, path string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2`,
		schema.CoreRoute.Table, schema.CoreRoute.Path, schema.CoreRoute.UpdatedAt, schema.CoreRoute.ID,
	)

	tag, err := repository.pool.Exec(context, query, path, id)
	if err != nil {
		return dberr.Wrap(err, "update_route_path")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteByEntity(context context.Context, entityClass, entityID, locale string) ([]*Route, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s = $1 AND %s = $2 AND ($3 = '' OR %s = $3)
		RETURNING %s`,
		schema.CoreRoute.Table,
		schema.CoreRoute.EntityClass, schema.CoreRoute.EntityID, schema.CoreRoute.Locale,
		routeColumns,
	)

	rows, err := repository.pool.Query(context, query, entityClass, entityID, locale)
	if err != nil {
		return nil, dberr.Wrap(err, "delete_routes_by_entity")
	}

	routes, err := collectRoutes(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_deleted_routes")
	}
	return routes, nil
}
