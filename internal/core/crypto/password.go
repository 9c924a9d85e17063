// Package crypto provides one-way password hashing for agent credentials.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash of plaintext. The salt is drawn
// per call, so hashing the same input twice yields different strings.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash. Comparison cost is
// fixed by the bcrypt work factor; a malformed hash verifies as false rather
// than surfacing an error to the caller.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
