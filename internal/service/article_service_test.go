package service

import (
	"context"
	"testing"

	"news_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleService() (ArticleService, *fakeArticleRepo, *fakeCommentRepo) {
	articleRepo := newFakeArticleRepo()
	commentRepo := newFakeCommentRepo()
	return NewArticleService(articleRepo, commentRepo), articleRepo, commentRepo
}

func TestArticleService_CreateAndGet(t *testing.T) {
	svc, _, _ := newArticleService()

	article, err := svc.CreateArticle(context.Background(), 1, model.CreateArticleRequest{
		Title:   "Hello",
		Content: "World",
	})
	require.NoError(t, err)
	assert.NotZero(t, article.ID)
	assert.Equal(t, 1, article.AuthorID)
	assert.NotNil(t, article.Tags)
	assert.False(t, article.IsPublished)

	got, err := svc.GetArticleByID(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, 1, got.ViewCount) // read bumps the counter

	got, err = svc.GetArticleByID(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)
}

func TestArticleService_GetArticleByID_NotFound(t *testing.T) {
	svc, _, _ := newArticleService()

	_, err := svc.GetArticleByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleService_Update_OwnerOrAdmin(t *testing.T) {
	svc, _, _ := newArticleService()

	article, err := svc.CreateArticle(context.Background(), 1, model.CreateArticleRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	newTitle := "Updated"
	// Non-owner, non-admin is rejected
	_, err = svc.UpdateArticle(context.Background(), article.ID, 2, model.RoleUser, model.UpdateArticleRequest{Title: &newTitle})
	assert.ErrorIs(t, err, ErrForbidden)

	// Owner succeeds
	updated, err := svc.UpdateArticle(context.Background(), article.ID, 1, model.RoleUser, model.UpdateArticleRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Title)

	// Admin succeeds on someone else's article
	other := "Admin edit"
	updated, err = svc.UpdateArticle(context.Background(), article.ID, 99, model.RoleAdmin, model.UpdateArticleRequest{Title: &other})
	require.NoError(t, err)
	assert.Equal(t, "Admin edit", updated.Title)
}

func TestArticleService_Update_PublishStampsPublishedAt(t *testing.T) {
	svc, _, _ := newArticleService()

	article, err := svc.CreateArticle(context.Background(), 1, model.CreateArticleRequest{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Nil(t, article.PublishedAt)

	published := true
	updated, err := svc.UpdateArticle(context.Background(), article.ID, 1, model.RoleUser, model.UpdateArticleRequest{IsPublished: &published})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	first := *updated.PublishedAt

	// Re-publishing does not move the original timestamp
	updated, err = svc.UpdateArticle(context.Background(), article.ID, 1, model.RoleUser, model.UpdateArticleRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.Equal(t, first, *updated.PublishedAt)
}

func TestArticleService_Delete(t *testing.T) {
	svc, _, _ := newArticleService()

	article, err := svc.CreateArticle(context.Background(), 1, model.CreateArticleRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	err = svc.DeleteArticle(context.Background(), article.ID, 2, model.RoleUser)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.DeleteArticle(context.Background(), article.ID, 1, model.RoleUser)
	require.NoError(t, err)

	err = svc.DeleteArticle(context.Background(), article.ID, 1, model.RoleUser)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleService_GetArticles_Pagination(t *testing.T) {
	svc, _, _ := newArticleService()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateArticle(context.Background(), 1, model.CreateArticleRequest{Title: "T", Content: "C"})
		require.NoError(t, err)
	}

	published := false
	articles, pagination, err := svc.GetArticles(context.Background(), model.ArticleFilters{IsPublished: &published})
	require.NoError(t, err)
	assert.Len(t, articles, 3)
	assert.Equal(t, DefaultPage, pagination.Page)
	assert.Equal(t, DefaultLimit, pagination.Limit)
	assert.Equal(t, int64(3), pagination.Total)
	assert.Equal(t, int64(1), pagination.TotalPages)
}

func TestArticleService_Comments(t *testing.T) {
	svc, _, _ := newArticleService()

	article, err := svc.CreateArticle(context.Background(), 1, model.CreateArticleRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	comment, err := svc.CreateComment(context.Background(), article.ID, 2, model.CreateCommentRequest{Content: "Nice"})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)

	reply, err := svc.CreateComment(context.Background(), article.ID, 3, model.CreateCommentRequest{Content: "Agreed", ParentID: &comment.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, comment.ID, *reply.ParentID)

	comments, err := svc.GetComments(context.Background(), article.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	_, err = svc.CreateComment(context.Background(), 42, 2, model.CreateCommentRequest{Content: "Nope"})
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
