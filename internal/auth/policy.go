package auth

import (
	"fmt"

	"github.com/careermap/careermap-api/internal/core/domain"
)

// Authorization guards. Each one is a stateless predicate evaluated once per
// request; a returned error is terminal for that request. Handlers never
// re-implement these checks inline.

// RequireAuthenticated fails when no principal was resolved.
func RequireAuthenticated(p *Principal) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

// RequireAdmin fails unless the principal carries the admin role.
func RequireAdmin(p *Principal) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// RequireOwnerOrPublic gates read access: public resources are readable by
// anyone, including anonymous callers; private ones only by their owner.
func RequireOwnerOrPublic(p *Principal, ownerID string, isPublic bool) error {
	if isPublic {
		return nil
	}
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.UserID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

// RequireOwner gates mutation: only the owning principal may proceed.
// Admins get no bypass here — their powers live on the admin endpoints.
func RequireOwner(p *Principal, ownerID string) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.UserID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

// ForbidSelfTarget rejects admin operations aimed at the admin's own account
// (delete, deactivate, role change). This keeps an admin from locking
// themselves out or orphaning the only admin account.
func ForbidSelfTarget(p *Principal, targetID, action string) error {
	if p != nil && p.UserID == targetID {
		return fmt.Errorf("%w: %s", domain.ErrSelfTarget, action)
	}
	return nil
}
