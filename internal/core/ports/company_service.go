package ports

import (
	"context"

	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/domain"
)

// CompanyInput carries validated company fields for create and update.
type CompanyInput struct {
	Name      string
	SubSector string
	Latitude  float64
	Longitude float64
	Status    domain.ApplicationStatus
	Ratings   domain.Ratings
	Notes     string
	IsPublic  bool
}

// CompanyUpdate carries the optional fields of a PATCH. Nil fields are left
// untouched.
type CompanyUpdate struct {
	Name      *string
	SubSector *string
	Latitude  *float64
	Longitude *float64
	Status    *domain.ApplicationStatus
	Ratings   *domain.Ratings
	Notes     *string
	IsPublic  *bool
}

// CompanyService defines use-case operations for tracked companies.
type CompanyService interface {
	List(ctx context.Context, p *auth.Principal) ([]domain.Company, error)
	Create(ctx context.Context, p *auth.Principal, input CompanyInput) (*domain.Company, error)
	Get(ctx context.Context, p *auth.Principal, id string) (*domain.Company, error)
	Update(ctx context.Context, p *auth.Principal, id string, update CompanyUpdate) (*domain.Company, error)
	Delete(ctx context.Context, p *auth.Principal, id string) error
}

// CommentService defines use-case operations for company discussions.
type CommentService interface {
	ListByCompany(ctx context.Context, p *auth.Principal, companyID string) ([]domain.Comment, error)
	Create(ctx context.Context, p *auth.Principal, companyID, content, parentID string) (*domain.Comment, error)
}
