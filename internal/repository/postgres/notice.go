package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/noticeboard-server/internal/model"
)

var _ model.NoticeStore = (*NoticeRepository)(nil)

type NoticeRepository struct {
	db *Connection
}

func NewNoticeRepository(db *Connection) *NoticeRepository {
	return &NoticeRepository{
		db: db,
	}
}

func (r *NoticeRepository) Create(ctx context.Context, notice model.Notice) (model.Notice, error) {
	query := `INSERT INTO notices (id, title, body, category, owner_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, title, body, category, owner_id, created_at`

	var savedNotice model.Notice
	err := r.db.QueryRow(ctx, query,
		notice.ID, notice.Title, notice.Body, notice.Category, notice.OwnerID, notice.CreatedAt,
	).Scan(
		&savedNotice.ID, &savedNotice.Title, &savedNotice.Body,
		&savedNotice.Category, &savedNotice.OwnerID, &savedNotice.CreatedAt,
	)
	if err != nil {
		return model.Notice{}, fmt.Errorf("failed to create notice: %w", err)
	}

	return savedNotice, nil
}

// List returns all notices with the owner expanded to name and email,
// optionally filtered by category. An empty category matches everything.
func (r *NoticeRepository) List(ctx context.Context, category string) ([]model.NoticeWithOwner, error) {
	query := `
		SELECT n.id, n.title, n.body, n.category, n.owner_id, n.created_at, u.name, u.email
		FROM notices n
		JOIN users u ON u.id = n.owner_id
		WHERE $1 = '' OR n.category = $1
		ORDER BY n.created_at DESC`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var notices []model.NoticeWithOwner
	for rows.Next() {
		var notice model.NoticeWithOwner
		err := rows.Scan(
			&notice.ID, &notice.Title, &notice.Body, &notice.Category,
			&notice.OwnerID, &notice.CreatedAt, &notice.OwnerName, &notice.OwnerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notices: %w", err)
	}

	return notices, nil
}

// UpdateOwned overwrites the mutable fields of a notice owned by ownerID.
// A notice that does not exist and a notice owned by someone else are both
// reported as ErrNotFound.
func (r *NoticeRepository) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, params model.UpdateNoticeParams) error {
	const query = `UPDATE notices SET title = $3, body = $4, category = $5
				   WHERE id = $1 AND owner_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID, params.Title, params.Body, params.Category)
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteOwned removes a notice owned by ownerID, with the same not-found
// semantics as UpdateOwned.
func (r *NoticeRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	const query = `DELETE FROM notices WHERE id = $1 AND owner_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
