package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/noticeboard-server/internal/api/errors"
	"github.com/dtroode/noticeboard-server/internal/logger"
	"github.com/dtroode/noticeboard-server/internal/model"
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects user ID into the request
// context. It touches no stores; requests failing here never reach a
// handler.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle wraps next with token extraction and verification. The token is
// read from the Authorization header; a Bearer prefix is accepted and
// stripped.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		userID, authErr := m.authenticateUser(r.Context(), tokenString)
		if authErr != nil {
			m.logger.Info("authentication failed",
				"path", r.URL.Path,
				"error", authErr.Message)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(authErr.HTTPCode)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": authErr.Message})
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (uuid.UUID, *apiErrors.APIError) {
	if tokenString == "" {
		return uuid.Nil, apiErrors.NewErrMissingAuthorizationToken()
	}

	userID, err := m.tokenService.GetUserID(ctx, tokenString)
	if err != nil {
		return uuid.Nil, apiErrors.NewErrInvalidAuthorizationToken()
	}

	if userID == uuid.Nil {
		return uuid.Nil, apiErrors.NewErrInvalidAuthorizationToken()
	}

	return userID, nil
}
