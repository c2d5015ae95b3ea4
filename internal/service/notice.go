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

type Notice struct {
	noticeStore model.NoticeStore
	logger      *logger.Logger
}

func NewNotice(noticeStore model.NoticeStore, logger *logger.Logger) *Notice {
	return &Notice{
		noticeStore: noticeStore,
		logger:      logger,
	}
}

// CreateNotice persists a new notice owned by the calling user.
func (s *Notice) CreateNotice(ctx context.Context, params model.CreateNoticeParams) (model.Notice, error) {
	s.logger.Debug("Notice service: creating notice",
		"owner_id", params.OwnerID,
		"category", params.Category)

	notice := model.Notice{
		ID:        uuid.New(),
		Title:     params.Title,
		Body:      params.Body,
		Category:  params.Category,
		OwnerID:   params.OwnerID,
		CreatedAt: time.Now(),
	}

	notice, err := s.noticeStore.Create(ctx, notice)
	if err != nil {
		s.logger.Error("Notice service: failed to create notice",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Notice{}, fmt.Errorf("failed to create notice: %w", err)
	}

	return notice, nil
}

// GetNotices returns all notices visible to authenticated users, optionally
// filtered by category. Listing is not scoped to the caller.
func (s *Notice) GetNotices(ctx context.Context, category string) ([]model.NoticeWithOwner, error) {
	notices, err := s.noticeStore.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	return notices, nil
}

// UpdateNotice overwrites title, body and category of a notice owned by
// userID. A missing notice and a notice owned by someone else both surface
// as not found.
func (s *Notice) UpdateNotice(ctx context.Context, userID, noticeID uuid.UUID, params model.UpdateNoticeParams) error {
	s.logger.Debug("Notice service: updating notice",
		"notice_id", noticeID,
		"user_id", userID)

	err := s.noticeStore.UpdateOwned(ctx, noticeID, userID, params)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrNoticeNotFound(noticeID)
	}
	if err != nil {
		s.logger.Error("Notice service: failed to update notice",
			"notice_id", noticeID,
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to update notice: %w", err)
	}

	return nil
}

// DeleteNotice permanently removes a notice owned by userID, with the same
// not-found semantics as UpdateNotice.
func (s *Notice) DeleteNotice(ctx context.Context, userID, noticeID uuid.UUID) error {
	s.logger.Debug("Notice service: deleting notice",
		"notice_id", noticeID,
		"user_id", userID)

	err := s.noticeStore.DeleteOwned(ctx, noticeID, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apiErrors.NewErrNoticeNotFound(noticeID)
	}
	if err != nil {
		s.logger.Error("Notice service: failed to delete notice",
			"notice_id", noticeID,
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to delete notice: %w", err)
	}

	return nil
}
