package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/careermap/careermap-api/internal/core/domain"
)

// DefaultTokenTTL is how long an issued token stays valid. Tokens are not
// renewable and carry no revocation mechanism; a fresh login is the only way
// to extend a session.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrMissingSecret is returned when a TokenCodec is constructed without a
// signing secret. There is deliberately no built-in fallback secret.
var ErrMissingSecret = errors.New("auth: signing secret must not be empty")

// Principal is the identity derived from a verified token. It reflects the
// account as it was at issuance time and lives for a single request.
type Principal struct {
	UserID string
	Email  string
	Role   domain.Role
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == domain.RoleAdmin
}

// Claims is the JWT payload for CareerMap identity tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenCodec issues and verifies HS256-signed identity tokens. Issuer and
// verifier share one symmetric secret because both live in the same process.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec from an externally supplied secret. An empty
// secret is a hard error so a misconfigured deployment fails at startup.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the principal's identity, stamped with
// issued-at and expiring after the codec's TTL.
func (c *TokenCodec) Issue(p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: p.UserID,
		Email:  p.Email,
		Role:   string(p.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token, returning the embedded principal.
// It fails closed: malformed structure, wrong signing method, bad signature,
// and expiry all yield nil. Callers must treat nil as anonymous.
func (c *TokenCodec) Verify(token string) *Principal {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil
	}

	return &Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
	}
}
