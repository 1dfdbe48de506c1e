package auth

import "strings"

// Resolver turns a raw Authorization header value into a Principal.
type Resolver struct {
	codec *TokenCodec
}

// NewResolver wraps a TokenCodec.
func NewResolver(codec *TokenCodec) *Resolver {
	return &Resolver{codec: codec}
}

// FromHeader resolves a header of the exact shape "Bearer <token>". A missing
// header, wrong scheme, or empty token resolves to nil without ever reaching
// the codec. The resolver never consults the user store, so the returned
// principal is the issuance-time snapshot carried by the token.
func (r *Resolver) FromHeader(value string) *Principal {
	if value == "" {
		return nil
	}

	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return nil
	}

	return r.codec.Verify(parts[1])
}
