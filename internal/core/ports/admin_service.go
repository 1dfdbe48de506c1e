package ports

import (
	"context"

	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/domain"
)

// UserStats summarizes the account base for the admin dashboard.
type UserStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	InactiveUsers int `json:"inactive_users"`
	AdminUsers    int `json:"admin_users"`
	NeverLoggedIn int `json:"never_logged_in"`
}

// AdminUser is a user row as shown on the admin panel.
type AdminUser struct {
	domain.User
	CompanyCount int64 `json:"company_count"`
}

// AdminUserUpdate carries the optional fields of an admin PATCH on a user.
type AdminUserUpdate struct {
	Name        *string
	Email       *string
	Role        *domain.Role
	IsActive    *bool
	NewPassword *string
}

// AdminService defines the account-management operations behind the admin
// panel. Every method enforces the admin role itself; handlers pass the
// caller's principal through unmodified.
type AdminService interface {
	ListUsers(ctx context.Context, p *auth.Principal) ([]AdminUser, UserStats, error)
	GetUser(ctx context.Context, p *auth.Principal, id string) (*AdminUser, error)
	UpdateUser(ctx context.Context, p *auth.Principal, id string, update AdminUserUpdate) (*AdminUser, error)
	DeleteUser(ctx context.Context, p *auth.Principal, id string) error
}
