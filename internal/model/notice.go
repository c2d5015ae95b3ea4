package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoticeStore defines persistence operations for notices.
type NoticeStore interface {
	Create(ctx context.Context, notice Notice) (Notice, error)
	List(ctx context.Context, category string) ([]NoticeWithOwner, error)
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, params UpdateNoticeParams) error
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}

// Notice represents a stored notice entity. OwnerID is set at creation and
// never changes afterwards.
type Notice struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Category  string
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

// NoticeWithOwner is a notice with the owner reference expanded to the
// owner's name and email.
type NoticeWithOwner struct {
	Notice
	OwnerName  string
	OwnerEmail string
}

// CreateNoticeParams contains parameters to create a notice.
type CreateNoticeParams struct {
	OwnerID  uuid.UUID
	Title    string
	Body     string
	Category string
}

// UpdateNoticeParams contains the mutable notice fields.
type UpdateNoticeParams struct {
	Title    string
	Body     string
	Category string
}
