package service

import (
	"context"
	"time"

	"news_api/internal/model"
)

// In-memory repository fakes. They mimic the repositories' nil-for-not-found
// contract so services can be tested without a database.

type fakeUserRepo struct {
	users  map[int]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*model.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id int, role string) error {
	u, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeOtpRepo struct {
	codes  []*model.OtpCode
	nextID int
}

func newFakeOtpRepo() *fakeOtpRepo {
	return &fakeOtpRepo{nextID: 1}
}

func (r *fakeOtpRepo) Create(_ context.Context, otp *model.OtpCode) error {
	otp.ID = r.nextID
	r.nextID++
	cp := *otp
	r.codes = append(r.codes, &cp)
	return nil
}

func (r *fakeOtpRepo) DeleteExpired(_ context.Context, email string) error {
	var kept []*model.OtpCode
	for _, c := range r.codes {
		if c.Email == email && c.ExpiresAt.Before(time.Now()) {
			continue
		}
		kept = append(kept, c)
	}
	r.codes = kept
	return nil
}

func (r *fakeOtpRepo) PurgeExpired(_ context.Context) (int64, error) {
	var kept []*model.OtpCode
	var purged int64
	for _, c := range r.codes {
		if c.ExpiresAt.Before(time.Now()) {
			purged++
			continue
		}
		kept = append(kept, c)
	}
	r.codes = kept
	return purged, nil
}

func (r *fakeOtpRepo) Consume(_ context.Context, email, code string) (*model.OtpCode, error) {
	for _, c := range r.codes {
		if c.Email == email && c.Code == code && !c.IsUsed && c.ExpiresAt.After(time.Now()) {
			c.IsUsed = true
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeArticleRepo struct {
	articles map[int64]*model.Article
	nextID   int64
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[int64]*model.Article), nextID: 1}
}

func (r *fakeArticleRepo) Create(_ context.Context, a *model.Article) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) FindByID(_ context.Context, id int64) (*model.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) FindAll(_ context.Context, filters model.ArticleFilters) ([]model.Article, int64, error) {
	var out []model.Article
	for _, a := range r.articles {
		if filters.IsPublished != nil && a.IsPublished != *filters.IsPublished {
			continue
		}
		if filters.Category != nil && (a.Category == nil || *a.Category != *filters.Category) {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeArticleRepo) Update(_ context.Context, a *model.Article) error {
	if _, ok := r.articles[a.ID]; !ok {
		return ErrArticleNotFound
	}
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.articles[id]; !ok {
		return ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) IncrementViewCount(_ context.Context, id int64) error {
	if a, ok := r.articles[id]; ok {
		a.ViewCount++
	}
	return nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *model.Comment) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.comments = append(r.comments, &cp)
	return nil
}

func (r *fakeCommentRepo) FindByArticle(_ context.Context, articleID int64) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			out = append(out, *c)
		}
	}
	return out, nil
}

// recordingMailer captures delivered codes for assertions
type recordingMailer struct {
	emails []string
	codes  []string
}

func (m *recordingMailer) SendOtpEmail(_ context.Context, email, code string, _ time.Duration) error {
	m.emails = append(m.emails, email)
	m.codes = append(m.codes, code)
	return nil
}
