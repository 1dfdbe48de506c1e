package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/api/metrics"
	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

// PublicListingCache abstracts the cache in front of the anonymous map view
// (backed by Redis in production).
type PublicListingCache interface {
	GetPublic(ctx context.Context) ([]domain.Company, bool)
	SetPublic(ctx context.Context, companies []domain.Company)
	Invalidate(ctx context.Context)
}

// CompanyService implements use-case operations for tracked companies.
type CompanyService struct {
	companies ports.CompanyRepository
	comments  ports.CommentRepository
	users     ports.UserRepository
	cache     PublicListingCache
	activity  ports.ActivityRecorder
	log       zerolog.Logger
}

func NewCompanyService(
	companies ports.CompanyRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	cache PublicListingCache,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *CompanyService {
	return &CompanyService{
		companies: companies,
		comments:  comments,
		users:     users,
		cache:     cache,
		activity:  activity,
		log:       log,
	}
}

// List returns the companies visible to the caller: public entries for
// anonymous callers, own plus public entries for authenticated ones. The
// anonymous listing is served from cache when possible since it backs the
// landing-page map.
func (s *CompanyService) List(ctx context.Context, p *auth.Principal) ([]domain.Company, error) {
	if p == nil {
		if cached, ok := s.cache.GetPublic(ctx); ok {
			metrics.PublicCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.PublicCacheTotal.WithLabelValues("miss").Inc()

		companies, err := s.companies.ListVisible(ctx, "")
		if err != nil {
			return nil, err
		}
		s.cache.SetPublic(ctx, companies)
		return companies, nil
	}

	return s.companies.ListVisible(ctx, p.UserID)
}

// Create adds a new tracked company owned by the caller.
func (s *CompanyService) Create(ctx context.Context, p *auth.Principal, input ports.CompanyInput) (*domain.Company, error) {
	if err := auth.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	ownerName := s.ownerName(ctx, p.UserID)

	now := time.Now().UTC()
	company := &domain.Company{
		ID:        uuid.NewString(),
		Name:      input.Name,
		SubSector: input.SubSector,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Status:    input.Status,
		Ratings:   input.Ratings,
		Notes:     input.Notes,
		IsPublic:  input.IsPublic,
		OwnerID:   p.UserID,
		OwnerName: ownerName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	metrics.CompaniesCreatedTotal.WithLabelValues(string(company.Status)).Inc()
	s.activity.Record(domain.ActivityEvent{
		Type:   domain.ActivityCompanyCreated,
		UserID: p.UserID,
		Email:  p.Email,
		Detail: company.Name,
	})
	s.log.Info().Str("company_id", company.ID).Str("owner_id", p.UserID).Msg("company created")

	return company, nil
}

// Get returns a single company, subject to the owner-or-public read rule.
func (s *CompanyService) Get(ctx context.Context, p *auth.Principal, id string) (*domain.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwnerOrPublic(p, company.OwnerID, company.IsPublic); err != nil {
		return nil, err
	}
	return company, nil
}

// Update applies a partial update. Only the owner may mutate.
func (s *CompanyService) Update(ctx context.Context, p *auth.Principal, id string, update ports.CompanyUpdate) (*domain.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(p, company.OwnerID); err != nil {
		return nil, err
	}

	if update.Name != nil {
		company.Name = *update.Name
	}
	if update.SubSector != nil {
		company.SubSector = *update.SubSector
	}
	if update.Latitude != nil {
		company.Latitude = *update.Latitude
	}
	if update.Longitude != nil {
		company.Longitude = *update.Longitude
	}
	if update.Status != nil {
		company.Status = *update.Status
	}
	if update.Ratings != nil {
		company.Ratings = *update.Ratings
	}
	if update.Notes != nil {
		company.Notes = *update.Notes
	}
	if update.IsPublic != nil {
		company.IsPublic = *update.IsPublic
	}
	company.UpdatedAt = time.Now().UTC()

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	return company, nil
}

// Delete removes a company and its discussion thread. Only the owner may
// delete.
func (s *CompanyService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.RequireOwner(p, company.OwnerID); err != nil {
		return err
	}

	if err := s.companies.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.comments.DeleteByCompany(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("company_id", id).Msg("failed to delete company comments")
	}

	s.cache.Invalidate(ctx)
	s.activity.Record(domain.ActivityEvent{
		Type:   domain.ActivityCompanyDeleted,
		UserID: p.UserID,
		Email:  p.Email,
		Detail: company.Name,
	})

	return nil
}

func (s *CompanyService) ownerName(ctx context.Context, userID string) string {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to resolve owner name")
		return ""
	}
	return user.Name
}
