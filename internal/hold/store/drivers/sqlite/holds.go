package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/opsbank/payhold/internal/hold/domain"
	"github.com/opsbank/payhold/internal/hold/store"
)

type holdsRepo struct {
	db dbtx
}

const holdColumns = `id, client_id, type, status, comment, source,
	created_at, created_by, expires_at, released_at, released_by,
	release_reason, idempotency_key`

func (r *holdsRepo) GetByIdempotencyKey(ctx context.Context, key string) (domain.Hold, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+holdColumns+`
		FROM payment_hold
		WHERE idempotency_key = ?
		LIMIT 1`, key)

	h, err := scanHold(row)
	if err != nil {
		return domain.Hold{}, mapNotFound(err)
	}
	return h, nil
}

func (r *holdsRepo) Insert(ctx context.Context, h domain.Hold) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payment_hold
			(id, client_id, type, status, comment, source,
			 created_at, created_by, expires_at, idempotency_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID,
		h.ClientID,
		string(h.Type),
		string(h.Status),
		mapOptionalString(h.Comment),
		mapOptionalString(h.Source),
		h.CreatedAt.UTC(),
		h.CreatedBy,
		mapOptionalTime(h.ExpiresAt),
		h.IdempotencyKey,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert hold: %w", store.ErrAlreadyExists)
		}
		return fmt.Errorf("insert hold: %w", err)
	}
	return nil
}

func (r *holdsRepo) ListByClient(
	ctx context.Context,
	clientID string,
	filter domain.StatusFilter,
) ([]domain.Hold, error) {
	query := `
		SELECT ` + holdColumns + `
		FROM payment_hold
		WHERE client_id = ?`
	args := []any{clientID}

	if filter != domain.FilterAll {
		query += ` AND status = ?`
		args = append(args, string(filter))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list holds: %w", err)
	}
	defer rows.Close()

	var holds []domain.Hold
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			return nil, fmt.Errorf("list holds: %w", err)
		}
		holds = append(holds, h)
	}
	return holds, rows.Err()
}

func (r *holdsRepo) GetOne(ctx context.Context, clientID, holdID string) (domain.Hold, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+holdColumns+`
		FROM payment_hold
		WHERE client_id = ? AND id = ?`, clientID, holdID)

	h, err := scanHold(row)
	if err != nil {
		return domain.Hold{}, mapNotFound(err)
	}
	return h, nil
}

func (r *holdsRepo) UpdateRelease(
	ctx context.Context,
	holdID, releasedBy string,
	reason *string,
	releasedAt time.Time,
) (domain.Hold, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE payment_hold
		SET status = ?, released_at = ?, released_by = ?, release_reason = ?
		WHERE id = ?
		RETURNING `+holdColumns,
		string(domain.HoldStatusReleased),
		releasedAt.UTC(),
		releasedBy,
		mapOptionalString(reason),
		holdID,
	)

	h, err := scanHold(row)
	if err != nil {
		return domain.Hold{}, mapNotFound(err)
	}
	return h, nil
}

func (r *holdsRepo) CountByIdempotencyKey(ctx context.Context, key string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payment_hold WHERE idempotency_key = ?`, key,
	).Scan(&count)
	return count, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanHold(s scanner) (domain.Hold, error) {
	var (
		h             domain.Hold
		holdType      string
		status        string
		comment       sql.NullString
		source        sql.NullString
		createdAt     time.Time
		expiresAt     sql.NullTime
		releasedAt    sql.NullTime
		releasedBy    sql.NullString
		releaseReason sql.NullString
	)

	err := s.Scan(
		&h.ID,
		&h.ClientID,
		&holdType,
		&status,
		&comment,
		&source,
		&createdAt,
		&h.CreatedBy,
		&expiresAt,
		&releasedAt,
		&releasedBy,
		&releaseReason,
		&h.IdempotencyKey,
	)
	if err != nil {
		return domain.Hold{}, err
	}

	h.Type = domain.HoldType(holdType)
	h.Status = domain.HoldStatus(status)
	h.Comment = mapNullStringPtr(comment)
	h.Source = mapNullStringPtr(source)
	h.CreatedAt = createdAt.UTC()
	h.ExpiresAt = mapNullTimePtr(expiresAt)
	h.ReleasedAt = mapNullTimePtr(releasedAt)
	h.ReleasedBy = mapNullStringPtr(releasedBy)
	h.ReleaseReason = mapNullStringPtr(releaseReason)
	return h, nil
}
