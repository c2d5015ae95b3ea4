package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// RegisterParams contains parameters to register a user. Password is the
// plaintext credential, hashed before it reaches any store.
type RegisterParams struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Department  string
}

// User represents a stored user with authentication material.
// PasswordHash is never exposed through the API.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	PhoneNumber  string
	Department   string
	CreatedAt    time.Time
}
