package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/noticeboard-server/internal/api/errors"
	"github.com/dtroode/noticeboard-server/internal/logger"
	"github.com/dtroode/noticeboard-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register hashes the password and persists a new user. Fields are stored
// as given; duplicate emails are not rejected.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) error {
	a.logger.Debug("Auth service: registering user",
		"email", params.Email)

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		PhoneNumber:  params.PhoneNumber,
		Department:   params.Department,
		CreatedAt:    time.Now(),
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", params.Email)

	return nil
}

// Login verifies the credentials and issues a bearer token. A password
// mismatch returns before any token is generated.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: logging in user",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: user not found",
			"email", email)
		return "", apiErrors.NewErrUserNotFound(email)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Compare(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"email", email)
		return "", apiErrors.NewErrInvalidPassword()
	}

	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to generate token",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"email", email)

	return token, nil
}

// GetUserID resolves the user ID carried by a bearer token.
func (a *Auth) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := a.tokenManager.Parse(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return userID, nil
}
