package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/noticeboard-server/internal/logger"
	"github.com/dtroode/noticeboard-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) error
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Department  string `json:"department"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user from the request body.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing register request",
		"email", req.Email)

	err := h.authService.Register(r.Context(), model.RegisterParams{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
	})
	if err != nil {
		h.logger.Error("Auth handler: register failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": "registered successfully"})
}

// Login verifies credentials and returns a bearer token in both the
// response body and the Authorization response header.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.Header().Set("Authorization", token)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
