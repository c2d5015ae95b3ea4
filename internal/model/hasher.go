package model

// PasswordHasher hashes plaintext passwords and verifies candidates against
// stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) bool
}
