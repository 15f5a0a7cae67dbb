package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/1234-ad/intelligent-content-orchestrator/internal/domain"
)

// psql is the squirrel statement builder with Postgres placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// contentColumns are the aggregated columns selected for a full content row.
const contentColumns = `c.id, c.title, c.body, c.status, c.version, c.author_id, c.category_id,
	c.metadata, c.views, c.likes, c.shares, c.comments,
	c.published_at, c.deleted_at, c.created_at, c.updated_at,
	COALESCE(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags`

// sortColumns maps whitelisted sort keys to their SQL columns. The validator
// rejects anything outside this set before the repository runs.
var sortColumns = map[string]string{
	"created_at":   "c.created_at",
	"updated_at":   "c.updated_at",
	"published_at": "c.published_at",
	"title":        "c.title",
	"views":        "c.views",
	"likes":        "c.likes",
}

// PostgresContentRepository implements ContentRepository using PostgreSQL.
type PostgresContentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContentRepository creates a new PostgresContentRepository.
func NewPostgresContentRepository(pool *pgxpool.Pool) *PostgresContentRepository {
	return &PostgresContentRepository{pool: pool}
}

// Create inserts a content item and connects its tags in one transaction.
func (r *PostgresContentRepository) Create(ctx context.Context, c *domain.Content) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO contents (id, title, body, status, version, author_id, category_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, c.ID, c.Title, c.Body, c.Status, c.Version, c.AuthorID, c.CategoryID, c.Metadata)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("insert content: %w", err)
	}

	if err := connectTags(ctx, tx, c.ID, c.Tags); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// connectTags connects-or-creates each tag name and links it to the content.
func connectTags(ctx context.Context, tx pgx.Tx, contentID string, tags []string) error {
	for _, name := range tags {
		var tagID string
		err := tx.QueryRow(ctx, `
			INSERT INTO tags (id, name) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, uuid.New().String(), name).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("upsert tag %q: %w", name, err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO content_tags (content_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, contentID, tagID); err != nil {
			return fmt.Errorf("link tag %q: %w", name, err)
		}
	}
	return nil
}

// GetByID fetches one item with its tags. Soft-deleted rows are not found.
func (r *PostgresContentRepository) GetByID(ctx context.Context, id string) (*domain.Content, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM contents c
		LEFT JOIN content_tags ct ON ct.content_id = c.id
		LEFT JOIN tags t ON t.id = ct.tag_id
		WHERE c.id = $1 AND c.status <> 'deleted'
		GROUP BY c.id
	`, contentColumns)

	c, err := scanContent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get content %s: %w", id, err)
	}
	return c, nil
}

// List returns a filtered, sorted page plus the total matching count.
func (r *PostgresContentRepository) List(ctx context.Context, f domain.ListFilter) ([]domain.Content, int, error) {
	where := listConditions(f)

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("contents c").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contents: %w", err)
	}

	orderBy := sortColumns[f.SortBy]
	if orderBy == "" {
		orderBy = "c.created_at"
	}
	dir := "DESC"
	if f.SortDir == domain.SortAsc {
		dir = "ASC"
	}

	query, args, err := psql.
		Select(contentColumns).
		From("contents c").
		LeftJoin("content_tags ct ON ct.content_id = c.id").
		LeftJoin("tags t ON t.id = ct.tag_id").
		Where(where).
		GroupBy("c.id").
		OrderBy(fmt.Sprintf("%s %s", orderBy, dir)).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var items []domain.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read list rows: %w", err)
	}

	return items, total, nil
}

// listConditions translates a ListFilter into squirrel conditions.
func listConditions(f domain.ListFilter) sq.And {
	cond := sq.And{}
	if f.Status != "" {
		cond = append(cond, sq.Eq{"c.status": f.Status})
	} else {
		cond = append(cond, sq.NotEq{"c.status": string(domain.StatusDeleted)})
	}
	if f.CategoryID != "" {
		cond = append(cond, sq.Eq{"c.category_id": f.CategoryID})
	}
	if f.AuthorID != "" {
		cond = append(cond, sq.Eq{"c.author_id": f.AuthorID})
	}
	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		cond = append(cond, sq.Or{
			sq.ILike{"c.title": pattern},
			sq.ILike{"c.body": pattern},
		})
	}
	return cond
}

// Update applies the input inside one transaction. The pre-update snapshot is
// appended before the row changes so the history always holds the exact
// pre-image; this read-then-write order is the point of the transaction.
func (r *PostgresContentRepository) Update(ctx context.Context, id string, in domain.UpdateInput, editorID string) (*domain.Content, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var curTitle, curBody string
	var curVersion int
	err = tx.QueryRow(ctx, `
		SELECT title, body, version FROM contents
		WHERE id = $1 AND status <> 'deleted'
		FOR UPDATE
	`, id).Scan(&curTitle, &curBody, &curVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock content %s: %w", id, err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO content_versions (id, content_id, version, title, body, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New().String(), id, curVersion, curTitle, curBody, editorID); err != nil {
		return nil, fmt.Errorf("snapshot version %d of %s: %w", curVersion, id, err)
	}

	update := psql.Update("contents").
		Set("version", curVersion+1).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	if in.Title != nil {
		update = update.Set("title", *in.Title)
	}
	if in.Body != nil {
		update = update.Set("body", *in.Body)
	}
	if in.CategoryID != nil {
		update = update.Set("category_id", *in.CategoryID)
	}
	if in.Metadata != nil {
		update = update.Set("metadata", in.Metadata)
	}
	if in.Status != nil {
		update = update.Set("status", *in.Status)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("update content %s: %w", id, err)
	}

	if in.Tags != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM content_tags WHERE content_id = $1`, id); err != nil {
			return nil, fmt.Errorf("clear tags of %s: %w", id, err)
		}
		if err := connectTags(ctx, tx, id, in.Tags); err != nil {
			return nil, err
		}
	}

	updated, err := getInTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return updated, nil
}

// SoftDelete marks the row deleted and stamps deleted_at; the row persists.
func (r *PostgresContentRepository) SoftDelete(ctx context.Context, id string) (*domain.Content, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE contents
		SET status = 'deleted', deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status <> 'deleted'
		RETURNING id, title, body, status, version, author_id, category_id,
			metadata, views, likes, shares, comments,
			published_at, deleted_at, created_at, updated_at
	`, id)

	c, err := scanContentRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("soft delete content %s: %w", id, err)
	}
	return c, nil
}

// Publish transitions the item to published and stamps published_at.
func (r *PostgresContentRepository) Publish(ctx context.Context, id string) (*domain.Content, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE contents
		SET status = 'published', published_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status <> 'deleted'
	`, id)
	if err != nil {
		return nil, fmt.Errorf("publish content %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	published, err := getInTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return published, nil
}

// RecordView appends a view record and bumps the denormalized counter.
func (r *PostgresContentRepository) RecordView(ctx context.Context, contentID, viewerID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var viewer *string
	if viewerID != "" {
		viewer = &viewerID
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO content_views (content_id, viewer_id) VALUES ($1, $2)
	`, contentID, viewer); err != nil {
		return fmt.Errorf("insert view record: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE contents SET views = views + 1 WHERE id = $1
	`, contentID); err != nil {
		return fmt.Errorf("increment view counter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListVersions returns the version history, newest first.
func (r *PostgresContentRepository) ListVersions(ctx context.Context, contentID string) ([]domain.ContentVersion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, content_id, version, title, body, created_by, created_at
		FROM content_versions
		WHERE content_id = $1
		ORDER BY version DESC
	`, contentID)
	if err != nil {
		return nil, fmt.Errorf("list versions of %s: %w", contentID, err)
	}
	defer rows.Close()

	var versions []domain.ContentVersion
	for rows.Next() {
		var v domain.ContentVersion
		if err := rows.Scan(&v.ID, &v.ContentID, &v.Version, &v.Title, &v.Body, &v.CreatedBy, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// getInTx re-reads a full content row with tags inside a transaction.
func getInTx(ctx context.Context, tx pgx.Tx, id string) (*domain.Content, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM contents c
		LEFT JOIN content_tags ct ON ct.content_id = c.id
		LEFT JOIN tags t ON t.id = ct.tag_id
		WHERE c.id = $1
		GROUP BY c.id
	`, contentColumns)

	c, err := scanContent(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("reload content %s: %w", id, err)
	}
	return c, nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanContent scans a row that includes the aggregated tags column.
func scanContent(row rowScanner) (*domain.Content, error) {
	var c domain.Content
	var tags []string
	err := row.Scan(
		&c.ID, &c.Title, &c.Body, &c.Status, &c.Version, &c.AuthorID, &c.CategoryID,
		&c.Metadata, &c.Views, &c.Likes, &c.Shares, &c.Comments,
		&c.PublishedAt, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
		&tags,
	)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		c.Tags = tags
	}
	return &c, nil
}

// scanContentRow scans a row without the tags column.
func scanContentRow(row rowScanner) (*domain.Content, error) {
	var c domain.Content
	err := row.Scan(
		&c.ID, &c.Title, &c.Body, &c.Status, &c.Version, &c.AuthorID, &c.CategoryID,
		&c.Metadata, &c.Views, &c.Likes, &c.Shares, &c.Comments,
		&c.PublishedAt, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
