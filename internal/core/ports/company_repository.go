package ports

import (
	"context"

	"github.com/careermap/careermap-api/internal/core/domain"
)

// CompanyRepository defines persistence for tracked companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	// ListVisible returns public companies plus, when ownerID is non-empty,
	// that owner's private ones, newest first.
	ListVisible(ctx context.Context, ownerID string) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	CountByOwner(ctx context.Context, ownerIDs []string) (map[string]int64, error)
}

// CommentRepository defines persistence for discussion comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByCompany(ctx context.Context, companyID string) ([]domain.Comment, error)
	DeleteByCompany(ctx context.Context, companyID string) (int64, error)
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
}
