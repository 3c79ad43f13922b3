package repository

import (
	"context"
	"fmt"

	"news_api/internal/model"
)

// CommentRepository defines operations for article comments
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByArticle(ctx context.Context, articleID int64) ([]model.Comment, error)
}

type commentRepository struct {
	db DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	sql := `INSERT INTO comments (content, user_id, article_id, parent_id, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, sql, c.Content, c.UserID, c.ArticleID, c.ParentID, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindByArticle retrieves all comments for an article, newest first
func (r *commentRepository) FindByArticle(ctx context.Context, articleID int64) ([]model.Comment, error) {
	sql := `SELECT id, content, user_id, article_id, parent_id, created_at, updated_at
            FROM comments WHERE article_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.UserID, &c.ArticleID, &c.ParentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, nil
}
