package service

import (
	"context"
	"strings"
	"time"

	"github.com/opsbank/payhold/internal/hold/domain"
	"github.com/opsbank/payhold/internal/hold/store"
	"github.com/opsbank/payhold/pkg/idx"
)

// ClientService provisions the client records holds reference.
type ClientService struct {
	Store store.Store
}

// Create registers a new client with a generated id.
func (s *ClientService) Create(ctx context.Context, name string) (domain.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Client{}, domain.ErrClientNameRequired
	}

	c := domain.Client{
		ID:        idx.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Clients().Create(ctx, c); err != nil {
		return domain.Client{}, err
	}
	return c, nil
}
