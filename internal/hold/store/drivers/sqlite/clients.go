package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/opsbank/payhold/internal/hold/domain"
	"github.com/opsbank/payhold/internal/hold/store"
)

type clientsRepo struct {
	db dbtx
}

func (r *clientsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM client WHERE id = ?`, id,
	).Scan(&one)
	if err != nil {
		if mapNotFound(err) == store.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("client exists: %w", err)
	}
	return true, nil
}

func (r *clientsRepo) GetByID(ctx context.Context, id string) (domain.Client, error) {
	var (
		c         domain.Client
		createdAt time.Time
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM client WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &createdAt)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	c.CreatedAt = createdAt.UTC()
	return c, nil
}

func (r *clientsRepo) Create(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO client (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create client: %w", store.ErrAlreadyExists)
		}
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}
