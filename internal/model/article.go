package model

import "time"

// Article represents a news article
type Article struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Summary     *string    `json:"summary,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	AuthorID    int        `json:"authorId"`
	AuthorName  string     `json:"authorName,omitempty"` // joined from users, not stored
	Category    *string    `json:"category,omitempty"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ViewCount   int        `json:"viewCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Comment is a reader comment on an article, optionally threaded via ParentID
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    int       `json:"userId"`
	ArticleID int64     `json:"articleId"`
	ParentID  *int64    `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateArticleRequest is used for creating a new article
type CreateArticleRequest struct {
	Title    string   `json:"title" binding:"required,min=1,max=500"`
	Content  string   `json:"content" binding:"required,min=1"`
	Summary  *string  `json:"summary" binding:"omitempty,max=1000"`
	ImageURL *string  `json:"imageUrl"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title       *string   `json:"title,omitempty" binding:"omitempty,min=1,max=500"` // Pointers to allow partial updates
	Content     *string   `json:"content,omitempty" binding:"omitempty,min=1"`
	Summary     *string   `json:"summary,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	IsPublished *bool     `json:"isPublished,omitempty"`
}

// CreateCommentRequest is used for commenting on an article
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ParentID *int64 `json:"parentId"`
}

// ArticleFilters contains list query parameters for articles
type ArticleFilters struct {
	Page        int
	Limit       int
	Category    *string
	Search      *string
	SortBy      string
	SortOrder   string
	IsPublished *bool
}

// Pagination describes a page of a larger result set
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}
