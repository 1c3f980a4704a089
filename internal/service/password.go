package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. Two calls on the same
// plaintext yield different digests.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches digest. A malformed digest is
// indistinguishable from a wrong password: both return false.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
