package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"news_api/internal/model"
	"news_api/internal/repository"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrForbidden       = errors.New("forbidden: user does not have permission for this action")
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ArticleService defines operations for articles and their comments
type ArticleService interface {
	CreateArticle(ctx context.Context, authorID int, req model.CreateArticleRequest) (*model.Article, error)
	GetArticles(ctx context.Context, filters model.ArticleFilters) ([]model.Article, *model.Pagination, error)
	GetArticleByID(ctx context.Context, id int64) (*model.Article, error)
	UpdateArticle(ctx context.Context, id int64, userID int, userRole string, req model.UpdateArticleRequest) (*model.Article, error)
	DeleteArticle(ctx context.Context, id int64, userID int, userRole string) error

	CreateComment(ctx context.Context, articleID int64, userID int, req model.CreateCommentRequest) (*model.Comment, error)
	GetComments(ctx context.Context, articleID int64) ([]model.Comment, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo repository.ArticleRepository, commentRepo repository.CommentRepository) ArticleService {
	return &articleService{articleRepo: articleRepo, commentRepo: commentRepo}
}

func (s *articleService) CreateArticle(ctx context.Context, authorID int, req model.CreateArticleRequest) (*model.Article, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	article := &model.Article{
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		ImageURL:  req.ImageURL,
		AuthorID:  authorID,
		Category:  req.Category,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article in repo: %w", err)
	}
	return article, nil
}

func (s *articleService) GetArticles(ctx context.Context, filters model.ArticleFilters) ([]model.Article, *model.Pagination, error) {
	if filters.Page < 1 {
		filters.Page = DefaultPage
	}
	if filters.Limit < 1 {
		filters.Limit = DefaultLimit
	}
	if filters.Limit > MaxLimit {
		filters.Limit = MaxLimit
	}

	articles, total, err := s.articleRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get articles from repo: %w", err)
	}

	limit := int64(filters.Limit)
	pagination := &model.Pagination{
		Page:       filters.Page,
		Limit:      filters.Limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
	return articles, pagination, nil
}

func (s *articleService) GetArticleByID(ctx context.Context, id int64) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find article by ID: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	// The read already succeeded; a failed counter bump is not worth a 500
	if err := s.articleRepo.IncrementViewCount(ctx, id); err != nil {
		log.Printf("WARN: failed to increment view count for article %d: %v", id, err)
	} else {
		article.ViewCount++
	}
	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, id int64, userID int, userRole string, req model.UpdateArticleRequest) (*model.Article, error) {
	existing, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find article for update: %w", err)
	}
	if existing == nil {
		return nil, ErrArticleNotFound
	}
	if existing.AuthorID != userID && userRole != model.RoleAdmin {
		return nil, ErrForbidden
	}

	// Apply updates
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.Summary != nil { // handles setting to "" as well
		existing.Summary = req.Summary
	}
	if req.ImageURL != nil {
		existing.ImageURL = req.ImageURL
	}
	if req.Category != nil {
		existing.Category = req.Category
	}
	if req.Tags != nil {
		existing.Tags = *req.Tags
	}
	if req.IsPublished != nil {
		existing.IsPublished = *req.IsPublished
		if *req.IsPublished && existing.PublishedAt == nil {
			now := time.Now()
			existing.PublishedAt = &now
		}
	}
	existing.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update article in repo: %w", err)
	}
	return existing, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, id int64, userID int, userRole string) error {
	existing, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find article for deletion: %w", err)
	}
	if existing == nil {
		return ErrArticleNotFound
	}
	if existing.AuthorID != userID && userRole != model.RoleAdmin {
		return ErrForbidden
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete article in repo: %w", err)
	}
	return nil
}

func (s *articleService) CreateComment(ctx context.Context, articleID int64, userID int, req model.CreateCommentRequest) (*model.Comment, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find article for comment: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	now := time.Now()
	comment := &model.Comment{
		Content:   req.Content,
		UserID:    userID,
		ArticleID: articleID,
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment in repo: %w", err)
	}
	return comment, nil
}

func (s *articleService) GetComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find article for comments: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	comments, err := s.commentRepo.FindByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments from repo: %w", err)
	}
	return comments, nil
}
