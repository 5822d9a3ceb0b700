// Package password wraps bcrypt hashing for credential storage.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted bcrypt hash of the plaintext password.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash. It fails closed:
// a malformed or truncated hash yields false, never a panic or error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
