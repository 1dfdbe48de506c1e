package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/careermap/careermap-api/internal/auth"
)

const principalKey = "principal"

// Identity resolves the Authorization header into a principal for every
// request. It never rejects: anonymous and invalid tokens both leave the
// principal unset, and each route's guards decide what that means.
func Identity(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if p := resolver.FromHeader(c.Request().Header.Get("Authorization")); p != nil {
				c.Set(principalKey, p)
			}
			return next(c)
		}
	}
}

// RequireAuth rejects requests that did not resolve to a principal.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := auth.RequireAuthenticated(PrincipalFrom(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// AdminOnly rejects requests whose principal does not carry the admin role.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := auth.RequireAdmin(PrincipalFrom(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// PrincipalFrom extracts the principal injected by Identity. Returns nil for
// anonymous requests.
func PrincipalFrom(c echo.Context) *auth.Principal {
	p, _ := c.Get(principalKey).(*auth.Principal)
	return p
}
