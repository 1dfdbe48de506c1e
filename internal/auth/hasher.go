package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor used for all stored credentials.
const HashCost = 12

// HashPassword derives a salted one-way digest of plain.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches digest. A malformed digest is
// treated the same as a mismatch — the caller only ever sees true or false.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
