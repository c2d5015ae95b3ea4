package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/noticeboard-server/internal/model"
)

const cost = 10

// Bcrypt implements PasswordHasher using the bcrypt KDF with a fixed work
// factor. Each hash carries its own random salt.
type Bcrypt struct{}

// NewBcrypt creates a new bcrypt password hasher.
func NewBcrypt() model.PasswordHasher {
	return &Bcrypt{}
}

// Hash derives a salted one-way hash from the plaintext password.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether the plaintext password matches the stored hash.
func (b *Bcrypt) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
