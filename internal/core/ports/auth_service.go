package ports

import (
	"context"

	"github.com/careermap/careermap-api/internal/core/domain"
)

// RegisterInput carries validated registration data.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login, and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Me returns the current credential record for a verified token subject.
	Me(ctx context.Context, userID string) (*domain.User, error)
}
