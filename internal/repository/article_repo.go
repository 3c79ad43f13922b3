package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"news_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ArticleRepository defines operations for article data
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id int64) (*model.Article, error)
	FindAll(ctx context.Context, filters model.ArticleFilters) ([]model.Article, int64, error)
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id int64) error
	IncrementViewCount(ctx context.Context, id int64) error
}

type articleRepository struct {
	db DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Sortable columns whitelisted for FindAll. Anything else falls back to created_at.
var articleSortColumns = map[string]string{
	"createdAt":   "a.created_at",
	"publishedAt": "a.published_at",
	"viewCount":   "a.view_count",
	"title":       "a.title",
}

// Create inserts a new article into the database
func (r *articleRepository) Create(ctx context.Context, a *model.Article) error {
	sql := `INSERT INTO articles (title, content, summary, image_url, author_id, category, tags, is_published, published_at, view_count, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, a.Title, a.Content, a.Summary, a.ImageURL, a.AuthorID, a.Category,
		a.Tags, a.IsPublished, a.PublishedAt, a.ViewCount, a.CreatedAt, a.UpdatedAt).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// FindByID retrieves an article by its ID with the author's name joined in
func (r *articleRepository) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	a := &model.Article{}
	sql := `SELECT a.id, a.title, a.content, a.summary, a.image_url, a.author_id, u.full_name, a.category, a.tags,
                   a.is_published, a.published_at, a.view_count, a.created_at, a.updated_at
            FROM articles a JOIN users u ON a.author_id = u.id WHERE a.id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.Summary, &a.ImageURL, &a.AuthorID, &a.AuthorName, &a.Category,
		&a.Tags, &a.IsPublished, &a.PublishedAt, &a.ViewCount, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find article by ID: %w", err)
	}
	return a, nil
}

// FindAll retrieves a page of articles matching the filters and the total
// count of matches
func (r *articleRepository) FindAll(ctx context.Context, filters model.ArticleFilters) ([]model.Article, int64, error) {
	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.IsPublished != nil {
		conditions = append(conditions, fmt.Sprintf("a.is_published = $%d", argCount))
		args = append(args, *filters.IsPublished)
		argCount++
	}
	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("a.category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.Search != nil && *filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(a.title ILIKE $%d OR a.content ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*filters.Search+"%")
		argCount++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM articles a" + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	sortColumn, ok := articleSortColumns[filters.SortBy]
	if !ok {
		sortColumn = "a.created_at"
	}
	sortDir := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		sortDir = "ASC"
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT a.id, a.title, a.content, a.summary, a.image_url, a.author_id, u.full_name, a.category, a.tags,
                                     a.is_published, a.published_at, a.view_count, a.created_at, a.updated_at
                              FROM articles a JOIN users u ON a.author_id = u.id`)
	queryBuilder.WriteString(whereClause)
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s NULLS LAST", sortColumn, sortDir))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Content, &a.Summary, &a.ImageURL, &a.AuthorID, &a.AuthorName, &a.Category,
			&a.Tags, &a.IsPublished, &a.PublishedAt, &a.ViewCount, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, total, nil
}

// Update modifies an existing article
func (r *articleRepository) Update(ctx context.Context, a *model.Article) error {
	sql := `UPDATE articles
            SET title = $1, content = $2, summary = $3, image_url = $4, category = $5, tags = $6,
                is_published = $7, published_at = $8, updated_at = NOW()
            WHERE id = $9 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, a.Title, a.Content, a.Summary, a.ImageURL, a.Category, a.Tags,
		a.IsPublished, a.PublishedAt, a.ID).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("article not found for update")
		}
		return fmt.Errorf("failed to update article: %w", err)
	}
	return nil
}

// Delete removes an article from the database
func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	sql := `DELETE FROM articles WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("article not found for deletion")
	}
	return nil
}

// IncrementViewCount bumps the view counter for an article
func (r *articleRepository) IncrementViewCount(ctx context.Context, id int64) error {
	sql := `UPDATE articles SET view_count = view_count + 1 WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return nil
}
