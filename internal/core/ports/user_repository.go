package ports

import (
	"context"
	"time"

	"github.com/careermap/careermap-api/internal/core/domain"
)

// UserRepository defines persistence for credential records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, fields UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// UserUpdate carries the optional fields of an admin user update. Nil fields
// are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	Role         *domain.Role
	IsActive     *bool
	PasswordHash *string
}
