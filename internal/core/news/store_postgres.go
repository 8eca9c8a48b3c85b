// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/newsdesk/internal/platform/apperr"
	"github.com/taibuivan/newsdesk/internal/platform/database/schema"
	"github.com/taibuivan/newsdesk/internal/platform/dberr"
	"github.com/taibuivan/newsdesk/internal/platform/postgres"
)

// PostgresRepository implements [Repository] with pgx.
//
// Reads of the aggregate go out as one pgx batch; writes run in a single
// transaction and upsert every translation record.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed news store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Listing

func (repository *PostgresRepository) ListNews(context context.Context, filter Filter, limit, offset int) ([]*ListItem, int, error) {
	n, t := schema.CoreNews, schema.CoreNewsTranslation

	var queryBuilder strings.Builder
	args := []any{filter.Locale}
	argID := 2

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			n.%s, n.%s, n.%s, n.%s,
			t.%s, t.%s, t.%s, t.%s,
			ARRAY(SELECT a.%s FROM %s a WHERE a.%s = n.%s ORDER BY a.%s) AS locales,
			COUNT(*) OVER() AS total_count
		FROM %s n
		LEFT JOIN %s t ON t.%s = n.%s AND t.%s = $1
		WHERE TRUE`,
		n.ID, n.Type, n.CreatedAt, n.UpdatedAt,
		t.Title, t.RoutePath, t.Published, t.PublishedAt,
		t.Locale, t.Table, t.NewsID, n.ID, t.Locale,
		n.Table,
		t.Table, t.NewsID, n.ID, t.Locale,
	))

	// Title search
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(` AND t.%s ILIKE '%%' || $%d || '%%' ESCAPE '\'`, t.Title, argID))
		args = append(args, escapeLike(filter.Query))
		argID++
	}

	// Type
	if filter.Type != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND n.%s = $%d", n.Type, argID))
		args = append(args, filter.Type)
		argID++
	}

	// Published state of the requested locale
	if filter.Published != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND COALESCE(t.%s, FALSE) = $%d", t.Published, argID))
		args = append(args, *filter.Published)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY n.%s DESC, n.%s DESC LIMIT $%d OFFSET $%d", n.CreatedAt, n.ID, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_news")
	}
	defer rows.Close()

	items := []*ListItem{}
	total := 0
	for rows.Next() {
		item := &ListItem{Locale: filter.Locale}
		var title, routePath *string
		var published *bool

		if err := rows.Scan(
			&item.ID, &item.Type, &item.CreatedAt, &item.UpdatedAt,
			&title, &routePath, &published, &item.PublishedAt,
			&item.AvailableLocales, &total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_news_list_item")
		}

		if title != nil {
			item.Title = *title
		}
		if routePath != nil {
			item.RoutePath = *routePath
		}
		item.Published = published != nil && *published
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_news_list")
	}
	return items, total, nil
}

// # Aggregate Reads

func (repository *PostgresRepository) GetNews(context context.Context, id int64) (*News, error) {
	n, t := schema.CoreNews, schema.CoreNewsTranslation
	s, e := schema.CoreNewsSeoTranslation, schema.CoreNewsExcerptTranslation

	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(n.Columns(), ", "), n.Table, n.ID), id)
	batch.Queue(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(t.Columns(), ", "), t.Table, t.NewsID), id)
	batch.Queue(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(s.Columns(), ", "), s.Table, s.NewsID), id)
	batch.Queue(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(e.Columns(), ", "), e.Table, e.NewsID), id)

	results := repository.pool.SendBatch(context, batch)
	defer results.Close()

	entity := New()
	if err := results.QueryRow().Scan(
		&entity.ID, &entity.Type, &entity.Images, &entity.Version, &entity.CreatedAt, &entity.UpdatedAt,
	); err != nil {
		return nil, dberr.Wrap(err, "get_news")
	}

	if err := scanTranslations(results, entity); err != nil {
		return nil, dberr.Wrap(err, "get_news_translations")
	}
	if err := scanSeoTranslations(results, entity); err != nil {
		return nil, dberr.Wrap(err, "get_news_seo")
	}
	if err := scanExcerptTranslations(results, entity); err != nil {
		return nil, dberr.Wrap(err, "get_news_excerpt")
	}

	return entity, nil
}

func scanTranslations(results pgx.BatchResults, entity *News) error {
	rows, err := results.Query()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var newsID int64
		var locale string
		var imageID, pdfID *int64
		t := &Translation{news: entity}

		if err := rows.Scan(
			&newsID, &locale, &t.Title, &t.Subtitle, &t.Summary, &t.Text, &t.Footer,
			&t.RoutePath, &imageID, &pdfID, &t.URL, &t.Published, &t.PublishedAt,
			&t.CreatedAt, &t.UpdatedAt, &t.CreatedBy, &t.UpdatedBy,
		); err != nil {
			return err
		}

		t.locale = locale
		t.Image = mediaFromID(imageID)
		t.Pdf = mediaFromID(pdfID)
		entity.translations[locale] = t
	}
	return rows.Err()
}

func scanSeoTranslations(results pgx.BatchResults, entity *News) error {
	rows, err := results.Query()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var newsID int64
		t := &SeoTranslation{}

		if err := rows.Scan(
			&newsID, &t.locale, &t.Title, &t.Description, &t.Keywords,
			&t.CanonicalURL, &t.NoIndex, &t.NoFollow, &t.HideInSitemap,
		); err != nil {
			return err
		}
		entity.Seo().put(t)
	}
	return rows.Err()
}

func scanExcerptTranslations(results pgx.BatchResults, entity *News) error {
	rows, err := results.Query()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var newsID int64
		t := &ExcerptTranslation{}

		if err := rows.Scan(
			&newsID, &t.locale, &t.Title, &t.More, &t.Description,
			&t.Categories, &t.Tags, &t.Icons, &t.Images,
		); err != nil {
			return err
		}
		entity.Excerpt().put(t)
	}
	return rows.Err()
}

// # Aggregate Writes

func (repository *PostgresRepository) CreateNews(context context.Context, entity *News) error {
	n := schema.CoreNews

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		var row pgx.Row
		if entity.ID > 0 {
			row = tx.QueryRow(context, fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
				RETURNING %s, %s, %s, %s`,
				n.Table, n.ID, n.Type, n.Images,
				n.ID, n.Version, n.CreatedAt, n.UpdatedAt,
			), entity.ID, entity.Type, nonNilMedia(entity.Images))
		} else {
			row = tx.QueryRow(context, fmt.Sprintf(`
				INSERT INTO %s (%s, %s) VALUES ($1, $2)
				RETURNING %s, %s, %s, %s`,
				n.Table, n.Type, n.Images,
				n.ID, n.Version, n.CreatedAt, n.UpdatedAt,
			), entity.Type, nonNilMedia(entity.Images))
		}

		if err := row.Scan(&entity.ID, &entity.Version, &entity.CreatedAt, &entity.UpdatedAt); err != nil {
			return dberr.Wrap(err, "create_news")
		}

		return writeTranslations(context, tx, entity)
	})
}

func (repository *PostgresRepository) UpdateNews(context context.Context, entity *News) error {
	n := schema.CoreNews

	return postgres.InTx(context, repository.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(context, fmt.Sprintf(`
			UPDATE %s SET %s = $1, %s = $2, %s = %s + 1, %s = now()
			WHERE %s = $3 AND %s = $4
			RETURNING %s, %s`,
			n.Table, n.Type, n.Images, n.Version, n.Version, n.UpdatedAt,
			n.ID, n.Version,
			n.Version, n.UpdatedAt,
		), entity.Type, nonNilMedia(entity.Images), entity.ID, entity.Version).Scan(&entity.Version, &entity.UpdatedAt)

		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(context, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, n.Table, n.ID), entity.ID).Scan(&exists); err != nil {
				return dberr.Wrap(err, "check_news_exists")
			}
			if !exists {
				return dberr.ErrNotFound
			}
			return apperr.Conflict("News was modified by someone else; reload and try again")
		}
		if err != nil {
			return dberr.Wrap(err, "update_news")
		}

		return writeTranslations(context, tx, entity)
	})
}

func (repository *PostgresRepository) DeleteNews(context context.Context, id int64) error {
	n := schema.CoreNews

	tag, err := repository.pool.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, n.Table, n.ID), id)
	if err != nil {
		return dberr.Wrap(err, "delete_news")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// writeTranslations upserts every translation, SEO and excerpt record.
func writeTranslations(context context.Context, tx pgx.Tx, entity *News) error {
	t := schema.CoreNewsTranslation
	s := schema.CoreNewsSeoTranslation
	e := schema.CoreNewsExcerptTranslation

	batch := &pgx.Batch{}

	translationSQL := upsertSQL(t.Table, t.Columns(), []string{t.NewsID, t.Locale}, []string{t.CreatedAt, t.CreatedBy})
	for _, tr := range entity.Translations() {
		batch.Queue(translationSQL,
			entity.ID, tr.locale, tr.Title, tr.Subtitle, tr.Summary, tr.Text, tr.Footer,
			tr.RoutePath, mediaID(tr.Image), mediaID(tr.Pdf), tr.URL, tr.Published, tr.PublishedAt,
			tr.CreatedAt, tr.UpdatedAt, tr.CreatedBy, tr.UpdatedBy,
		)
	}

	seoSQL := upsertSQL(s.Table, s.Columns(), []string{s.NewsID, s.Locale}, nil)
	for _, tr := range entity.Seo().Translations() {
		batch.Queue(seoSQL,
			entity.ID, tr.locale, tr.Title, tr.Description, tr.Keywords,
			tr.CanonicalURL, tr.NoIndex, tr.NoFollow, tr.HideInSitemap,
		)
	}

	excerptSQL := upsertSQL(e.Table, e.Columns(), []string{e.NewsID, e.Locale}, nil)
	for _, tr := range entity.Excerpt().Translations() {
		batch.Queue(excerptSQL,
			entity.ID, tr.locale, tr.Title, tr.More, tr.Description,
			nonNil(tr.Categories), nonNil(tr.Tags), nonNilMedia(tr.Icons), nonNilMedia(tr.Images),
		)
	}

	if batch.Len() == 0 {
		return nil
	}

	results := tx.SendBatch(context, batch)
	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return dberr.Wrap(err, "write_news_translations")
		}
	}
	return dberr.Wrap(results.Close(), "write_news_translations")
}

// upsertSQL builds an INSERT … ON CONFLICT DO UPDATE for columns, keyed by
// conflict. Columns in keep are only written on insert.
func upsertSQL(table string, columns, conflict, keep []string) string {
	placeholders := make([]string, len(columns))
	var updates []string

	for i, column := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if contains(conflict, column) || contains(keep, column) {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}

	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s`,
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(conflict, ", "),
		strings.Join(updates, ", "),
	)
}

// # Helpers

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes value match literally inside a LIKE pattern.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func mediaID(ref *MediaRef) *int64 {
	if ref == nil {
		return nil
	}
	return &ref.ID
}

func mediaFromID(id *int64) *MediaRef {
	if id == nil {
		return nil
	}
	return &MediaRef{ID: *id}
}

// nonNil keeps NOT NULL array columns from receiving SQL NULL.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}

func nonNilMedia(values []MediaRef) []MediaRef {
	return nonNil(values)
}
