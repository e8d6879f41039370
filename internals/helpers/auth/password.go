package helperAuth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is a var so tests can drop it to bcrypt.MinCost.
var PasswordCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash is a constant-time bcrypt compare; any error (including a
// malformed stored hash) counts as a mismatch.
func CheckPasswordHash(hash, password string) bool {
	if hash == "" || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
