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

// CommentService implements the discussion threads under companies.
type CommentService struct {
	comments  ports.CommentRepository
	companies ports.CompanyRepository
	users     ports.UserRepository
	activity  ports.ActivityRecorder
	log       zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	companies ports.CompanyRepository,
	users ports.UserRepository,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{
		comments:  comments,
		companies: companies,
		users:     users,
		activity:  activity,
		log:       log,
	}
}

// ListByCompany returns a company's discussion thread, oldest first. Comments
// are visible to exactly the callers who can read the company itself.
func (s *CommentService) ListByCompany(ctx context.Context, p *auth.Principal, companyID string) ([]domain.Comment, error) {
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwnerOrPublic(p, company.OwnerID, company.IsPublic); err != nil {
		return nil, err
	}
	return s.comments.ListByCompany(ctx, companyID)
}

// Create posts a comment. The caller must be authenticated and able to read
// the company being discussed.
func (s *CommentService) Create(ctx context.Context, p *auth.Principal, companyID, content, parentID string) (*domain.Comment, error) {
	if err := auth.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwnerOrPublic(p, company.OwnerID, company.IsPublic); err != nil {
		return nil, err
	}

	authorName := ""
	if user, err := s.users.FindByID(ctx, p.UserID); err == nil {
		authorName = user.Name
	}

	comment := &domain.Comment{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		AuthorID:   p.UserID,
		AuthorName: authorName,
		Content:    content,
		ParentID:   parentID,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	metrics.CommentsCreatedTotal.Inc()
	s.activity.Record(domain.ActivityEvent{
		Type:   domain.ActivityCommentPosted,
		UserID: p.UserID,
		Email:  p.Email,
		Detail: company.Name,
	})

	return comment, nil
}
