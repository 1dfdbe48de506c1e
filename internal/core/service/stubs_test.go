package service

import (
	"context"
	"time"

	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository for service tests.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, fields ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	if fields.IsActive != nil {
		u.IsActive = *fields.IsActive
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

// stubCompanyRepo is an in-memory CompanyRepository for service tests.
type stubCompanyRepo struct {
	companies map[string]*domain.Company
}

func newStubCompanyRepo(companies ...*domain.Company) *stubCompanyRepo {
	r := &stubCompanyRepo{companies: make(map[string]*domain.Company)}
	for _, c := range companies {
		r.companies[c.ID] = c
	}
	return r
}

func (r *stubCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id string) (*domain.Company, error) {
	if c, ok := r.companies[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (r *stubCompanyRepo) ListVisible(_ context.Context, ownerID string) ([]domain.Company, error) {
	out := make([]domain.Company, 0, len(r.companies))
	for _, c := range r.companies {
		if c.IsPublic || (ownerID != "" && c.OwnerID == ownerID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	r.companies[company.ID] = company
	return nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.companies[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

func (r *stubCompanyRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, c := range r.companies {
		if c.OwnerID == ownerID {
			delete(r.companies, id)
			n++
		}
	}
	return n, nil
}

func (r *stubCompanyRepo) CountByOwner(_ context.Context, ownerIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(ownerIDs))
	for _, c := range r.companies {
		counts[c.OwnerID]++
	}
	return counts, nil
}

// stubCommentRepo is an in-memory CommentRepository for service tests.
type stubCommentRepo struct {
	comments []*domain.Comment
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.comments = append(r.comments, comment)
	return nil
}

func (r *stubCommentRepo) ListByCompany(_ context.Context, companyID string) ([]domain.Comment, error) {
	out := make([]domain.Comment, 0)
	for _, c := range r.comments {
		if c.CompanyID == companyID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) DeleteByCompany(_ context.Context, companyID string) (int64, error) {
	return r.deleteWhere(func(c *domain.Comment) bool { return c.CompanyID == companyID }), nil
}

func (r *stubCommentRepo) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
	return r.deleteWhere(func(c *domain.Comment) bool { return c.AuthorID == authorID }), nil
}

func (r *stubCommentRepo) deleteWhere(match func(*domain.Comment) bool) int64 {
	var n int64
	kept := r.comments[:0]
	for _, c := range r.comments {
		if match(c) {
			n++
			continue
		}
		kept = append(kept, c)
	}
	r.comments = kept
	return n
}

// recorderStub captures activity events synchronously.
type recorderStub struct {
	events []domain.ActivityEvent
}

func (r *recorderStub) Record(event domain.ActivityEvent) {
	r.events = append(r.events, event)
}

func (r *recorderStub) has(t domain.ActivityType) bool {
	for _, e := range r.events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// cacheStub is an in-memory PublicListingCache for service tests.
type cacheStub struct {
	companies   []domain.Company
	cached      bool
	sets        int
	invalidates int
}

func (c *cacheStub) GetPublic(_ context.Context) ([]domain.Company, bool) {
	if !c.cached {
		return nil, false
	}
	return c.companies, true
}

func (c *cacheStub) SetPublic(_ context.Context, companies []domain.Company) {
	c.companies = companies
	c.cached = true
	c.sets++
}

func (c *cacheStub) Invalidate(_ context.Context) {
	c.companies = nil
	c.cached = false
	c.invalidates++
}
