package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

// AdminService implements account management for the admin panel.
type AdminService struct {
	users     ports.UserRepository
	companies ports.CompanyRepository
	comments  ports.CommentRepository
	activity  ports.ActivityRecorder
	log       zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	companies ports.CompanyRepository,
	comments ports.CommentRepository,
	activity ports.ActivityRecorder,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:     users,
		companies: companies,
		comments:  comments,
		activity:  activity,
		log:       log,
	}
}

// ListUsers returns every account with its company count, plus summary stats.
func (s *AdminService) ListUsers(ctx context.Context, p *auth.Principal) ([]ports.AdminUser, ports.UserStats, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, ports.UserStats{}, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, ports.UserStats{}, err
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	counts, err := s.companies.CountByOwner(ctx, ids)
	if err != nil {
		return nil, ports.UserStats{}, err
	}

	out := make([]ports.AdminUser, 0, len(users))
	stats := ports.UserStats{TotalUsers: len(users)}
	for _, u := range users {
		out = append(out, ports.AdminUser{User: u, CompanyCount: counts[u.ID]})

		if u.IsActive {
			stats.ActiveUsers++
		} else {
			stats.InactiveUsers++
		}
		if u.Role == domain.RoleAdmin {
			stats.AdminUsers++
		}
		if u.LastLoginAt == nil {
			stats.NeverLoggedIn++
		}
	}

	return out, stats, nil
}

// GetUser returns a single account with its company count.
func (s *AdminService) GetUser(ctx context.Context, p *auth.Principal, id string) (*ports.AdminUser, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.companies.CountByOwner(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	return &ports.AdminUser{User: *user, CompanyCount: counts[id]}, nil
}

// UpdateUser applies an admin edit: rename, re-email, role change, active
// flag, or direct password reset. Role changes and deactivation may not
// target the calling admin's own account.
func (s *AdminService) UpdateUser(ctx context.Context, p *auth.Principal, id string, update ports.AdminUserUpdate) (*ports.AdminUser, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}

	if update.Role != nil {
		if err := auth.ForbidSelfTarget(p, id, "change your own role"); err != nil {
			return nil, err
		}
		if !update.Role.Valid() {
			return nil, domain.ErrForbidden
		}
	}
	if update.IsActive != nil && !*update.IsActive {
		if err := auth.ForbidSelfTarget(p, id, "deactivate your own account"); err != nil {
			return nil, err
		}
	}

	fields := ports.UserUpdate{
		Name:     update.Name,
		Email:    update.Email,
		Role:     update.Role,
		IsActive: update.IsActive,
	}
	if update.NewPassword != nil {
		hash, err := auth.HashPassword(*update.NewPassword)
		if err != nil {
			return nil, err
		}
		fields.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Type:   domain.ActivityUserUpdated,
		UserID: p.UserID,
		Email:  p.Email,
		Detail: user.Email,
	})
	s.log.Info().Str("admin_id", p.UserID).Str("target_id", id).Msg("user updated by admin")

	counts, err := s.companies.CountByOwner(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return &ports.AdminUser{User: *user, CompanyCount: counts[id]}, nil
}

// DeleteUser removes an account and everything it owns. An admin may not
// delete their own account.
func (s *AdminService) DeleteUser(ctx context.Context, p *auth.Principal, id string) error {
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}
	if err := auth.ForbidSelfTarget(p, id, "delete your own admin account"); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.companies.DeleteByOwner(ctx, id); err != nil {
		return err
	}
	if _, err := s.comments.DeleteByAuthor(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to delete user comments")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(domain.ActivityEvent{
		Type:   domain.ActivityUserDeleted,
		UserID: p.UserID,
		Email:  p.Email,
		Detail: user.Email,
	})
	s.log.Info().Str("admin_id", p.UserID).Str("target_id", id).Msg("user deleted by admin")

	return nil
}
