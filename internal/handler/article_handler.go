package handler

import (
	"errors"
	"net/http"
	"strconv"

	"news_api/internal/middleware"
	"news_api/internal/model"
	"news_api/internal/service"
	"news_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// ArticleHandler handles article and comment requests
type ArticleHandler struct {
	service service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(s service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: s}
}

func parseArticleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid article ID", model.ErrCodeValidation)
		return 0, false
	}
	return id, true
}

// CreateArticle creates a new article authored by the caller
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required", model.ErrCodeUnauthorized)
		return
	}

	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error(), model.ErrCodeValidation)
		return
	}

	article, err := h.service.CreateArticle(c.Request.Context(), identity.ID, req)
	if err != nil {
		respondInternal(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Article created successfully", gin.H{"article": article})
}

// GetArticles lists articles with pagination and filters (public)
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	filters := model.ArticleFilters{
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if category := c.Query("category"); category != "" {
		filters.Category = &category
	}
	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}

	isPublished := c.DefaultQuery("isPublished", "true") == "true"
	filters.IsPublished = &isPublished

	articles, pagination, err := h.service.GetArticles(c.Request.Context(), filters)
	if err != nil {
		respondInternal(c, err)
		return
	}

	if articles == nil {
		articles = []model.Article{}
	}
	respondSuccess(c, http.StatusOK, "Articles retrieved successfully", gin.H{
		"articles":   articles,
		"pagination": pagination,
	})
}

// GetArticleByID returns one article and bumps its view counter (public)
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	article, err := h.service.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, err.Error(), model.ErrCodeArticleNotFound)
			return
		}
		respondInternal(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Article retrieved successfully", gin.H{"article": article})
}

// UpdateArticle applies a partial update; only the author or an admin may edit
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required", model.ErrCodeUnauthorized)
		return
	}

	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error(), model.ErrCodeValidation)
		return
	}

	article, err := h.service.UpdateArticle(c.Request.Context(), id, identity.ID, identity.Role, req)
	if err != nil {
		h.respondArticleError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Article updated successfully", gin.H{"article": article})
}

// DeleteArticle removes an article; only the author or an admin may delete
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required", model.ErrCodeUnauthorized)
		return
	}

	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteArticle(c.Request.Context(), id, identity.ID, identity.Role); err != nil {
		h.respondArticleError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Article deleted successfully", nil)
}

// CreateComment adds a comment to an article
func (h *ArticleHandler) CreateComment(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required", model.ErrCodeUnauthorized)
		return
	}

	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request: "+err.Error(), model.ErrCodeValidation)
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), id, identity.ID, req)
	if err != nil {
		h.respondArticleError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Comment created successfully", gin.H{"comment": comment})
}

// GetComments lists an article's comments (public)
func (h *ArticleHandler) GetComments(c *gin.Context) {
	id, ok := parseArticleID(c)
	if !ok {
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), id)
	if err != nil {
		h.respondArticleError(c, err)
		return
	}

	if comments == nil {
		comments = []model.Comment{}
	}
	respondSuccess(c, http.StatusOK, "Comments retrieved successfully", gin.H{"comments": comments})
}

func (h *ArticleHandler) respondArticleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound):
		respondError(c, http.StatusNotFound, err.Error(), model.ErrCodeArticleNotFound)
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, err.Error(), model.ErrCodeForbidden)
	default:
		respondInternal(c, err)
	}
}

// RegisterArticleRoutes registers article and comment routes
func (h *ArticleHandler) RegisterArticleRoutes(rg *gin.RouterGroup, jwtUtil *utils.JWTUtil) {
	articleGroup := rg.Group("/articles")
	{
		articleGroup.GET("", middleware.OptionalAuthMiddleware(jwtUtil), h.GetArticles)
		articleGroup.GET("/:id", h.GetArticleByID)
		articleGroup.GET("/:id/comments", h.GetComments)

		articleGroup.POST("", middleware.JWTAuthMiddleware(jwtUtil), h.CreateArticle)
		articleGroup.PUT("/:id", middleware.JWTAuthMiddleware(jwtUtil), h.UpdateArticle)
		articleGroup.DELETE("/:id", middleware.JWTAuthMiddleware(jwtUtil), h.DeleteArticle)
		articleGroup.POST("/:id/comments", middleware.JWTAuthMiddleware(jwtUtil), h.CreateComment)
	}
}
