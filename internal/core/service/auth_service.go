package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/api/metrics"
	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

// AuthService implements registration, login, and current-user lookup.
type AuthService struct {
	users    ports.UserRepository
	codec    *auth.TokenCodec
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *auth.TokenCodec, activity ports.ActivityRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, activity: activity, log: log}
}

// Register creates a new USER account and issues its first token.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issue(created)
	if err != nil {
		return "", nil, err
	}

	s.activity.Record(domain.ActivityEvent{
		Type:   domain.ActivityRegister,
		UserID: created.ID,
		Email:  created.Email,
	})
	s.log.Info().Str("user_id", created.ID).Msg("user registered")

	return token, created, nil
}

// Login authenticates by email and password. Every failure collapses to
// ErrInvalidCredentials so the response never reveals whether the email
// exists or the account was deactivated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) || !user.IsActive {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.activity.Record(domain.ActivityEvent{
			Type:   domain.ActivityLoginFailed,
			UserID: user.ID,
			Email:  user.Email,
		})
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	} else {
		user.LastLoginAt = &now
	}

	token, err := s.issue(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.activity.Record(domain.ActivityEvent{
		Type:   domain.ActivityLogin,
		UserID: user.ID,
		Email:  user.Email,
	})

	return token, user, nil
}

// Me returns the current credential record for a verified token subject. The
// record is looked up fresh, so role and active-flag changes made after the
// token was issued are visible here even though the token itself is not
// re-evaluated.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issue(user *domain.User) (string, error) {
	token, err := s.codec.Issue(auth.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", err
	}
	metrics.TokensIssuedTotal.Inc()
	return token, nil
}
