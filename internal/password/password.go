// Package password wraps bcrypt with the fixed work factor used for all
// stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

const cost = 10

// Hash derives a salted one-way digest from the plaintext password.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. Mismatch and
// malformed digests both report false; the caller never learns which.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
