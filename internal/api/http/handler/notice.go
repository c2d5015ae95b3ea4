package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/noticeboard-server/internal/api/errors"
	"github.com/dtroode/noticeboard-server/internal/logger"
	"github.com/dtroode/noticeboard-server/internal/model"
)

// NoticeService defines business operations for notice management.
type NoticeService interface {
	CreateNotice(ctx context.Context, params model.CreateNoticeParams) (model.Notice, error)
	GetNotices(ctx context.Context, category string) ([]model.NoticeWithOwner, error)
	UpdateNotice(ctx context.Context, userID, noticeID uuid.UUID, params model.UpdateNoticeParams) error
	DeleteNotice(ctx context.Context, userID, noticeID uuid.UUID) error
}

// Notice handles HTTP endpoints for notices.
type Notice struct {
	noticeService  NoticeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNotice creates a new Notice handler.
func NewNotice(noticeService NoticeService, contextManager model.ContextManager, logger *logger.Logger) *Notice {
	return &Notice{
		noticeService:  noticeService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type noticeRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

type noticeOwner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type noticeResponse struct {
	ID       uuid.UUID   `json:"id"`
	Title    string      `json:"title"`
	Body     string      `json:"body"`
	Category string      `json:"category"`
	Date     time.Time   `json:"date"`
	User     noticeOwner `json:"user"`
}

// Create persists a new notice owned by the authenticated user.
func (h *Notice) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := h.extractUserIDFromContext(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
		return
	}

	h.logger.Debug("Notice handler: processing create request",
		"user_id", userID,
		"category", req.Category)

	_, err = h.noticeService.CreateNotice(r.Context(), model.CreateNoticeParams{
		OwnerID:  userID,
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		h.logger.Error("Notice handler: create failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"msg": "notice created successfully"})
}

// List returns all notices, optionally filtered by the category query
// parameter, with owners expanded to name and email.
func (h *Notice) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.extractUserIDFromContext(r.Context()); err != nil {
		handleError(w, err)
		return
	}

	category := r.URL.Query().Get("category")

	notices, err := h.noticeService.GetNotices(r.Context(), category)
	if err != nil {
		h.logger.Error("Notice handler: list failed",
			"category", category,
			"error", err.Error())
		handleError(w, err)
		return
	}

	resp := make([]noticeResponse, 0, len(notices))
	for _, n := range notices {
		resp = append(resp, noticeResponse{
			ID:       n.ID,
			Title:    n.Title,
			Body:     n.Body,
			Category: n.Category,
			Date:     n.CreatedAt,
			User:     noticeOwner{Name: n.OwnerName, Email: n.OwnerEmail},
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update overwrites title, body and category of a notice owned by the
// authenticated user.
func (h *Notice) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := h.extractUserIDFromContext(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	noticeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid notice id"})
		return
	}

	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid request body"})
		return
	}

	h.logger.Debug("Notice handler: processing update request",
		"notice_id", noticeID,
		"user_id", userID)

	err = h.noticeService.UpdateNotice(r.Context(), userID, noticeID, model.UpdateNoticeParams{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		h.logger.Error("Notice handler: update failed",
			"notice_id", noticeID,
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "notice updated"})
}

// Delete permanently removes a notice owned by the authenticated user.
func (h *Notice) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := h.extractUserIDFromContext(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	noticeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "invalid notice id"})
		return
	}

	h.logger.Debug("Notice handler: processing delete request",
		"notice_id", noticeID,
		"user_id", userID)

	if err := h.noticeService.DeleteNotice(r.Context(), userID, noticeID); err != nil {
		h.logger.Error("Notice handler: delete failed",
			"notice_id", noticeID,
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "notice deleted"})
}

func (h *Notice) extractUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, apiErrors.NewErrMissingAuthorizationToken()
	}
	return userID, nil
}
