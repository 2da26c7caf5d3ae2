package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opsbank/payhold/internal/hold/domain"
	"github.com/opsbank/payhold/internal/hold/store"
	"github.com/opsbank/payhold/pkg/idx"
)

// HoldService orchestrates the hold lifecycle: idempotent creation, reads
// with lazily derived expiry, and the single ACTIVE -> RELEASED transition.
type HoldService struct {
	Store store.Store

	// Now is the clock; tests override it. Defaults to time.Now (UTC).
	Now func() time.Time
}

func (s *HoldService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

type CreateHoldInput struct {
	ClientID       string
	Type           domain.HoldType
	Comment        *string
	Source         *string
	ExpiresAt      *time.Time
	IdempotencyKey string
	CreatedBy      string
}

// Create places a new hold, or returns the previously accepted hold when
// the idempotency key has been seen before. The bool result reports whether
// a row was actually inserted.
//
// The pre-insert lookup is only a fast path; the unique constraint on
// idempotency_key is what enforces at-most-one-row-per-key. A losing
// concurrent insert is resolved by re-reading the winning row.
func (s *HoldService) Create(ctx context.Context, in CreateHoldInput) (domain.Hold, bool, error) {
	now := s.now()

	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		return domain.Hold{}, false, domain.ErrExpiryNotFuture
	}

	var (
		hold    domain.Hold
		created bool
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		exists, err := tx.Clients().Exists(ctx, in.ClientID)
		if err != nil {
			return fmt.Errorf("check client: %w", err)
		}
		if !exists {
			return domain.ErrClientNotFound
		}

		existing, err := tx.Holds().GetByIdempotencyKey(ctx, in.IdempotencyKey)
		if err == nil {
			// Idempotent replay: the stored hold wins, whatever this
			// request's payload says.
			hold = existing
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("lookup idempotency key: %w", err)
		}

		hold = domain.Hold{
			ID:             idx.New().String(),
			ClientID:       in.ClientID,
			Type:           in.Type,
			Status:         domain.HoldStatusActive,
			Comment:        in.Comment,
			Source:         in.Source,
			CreatedAt:      now,
			CreatedBy:      in.CreatedBy,
			ExpiresAt:      in.ExpiresAt,
			IdempotencyKey: in.IdempotencyKey,
		}

		if err := tx.Holds().Insert(ctx, hold); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Lost the insert race on the key; the winner's row is
				// authoritative.
				winner, rerr := tx.Holds().GetByIdempotencyKey(ctx, in.IdempotencyKey)
				if rerr != nil {
					return fmt.Errorf("re-read after key race: %w", rerr)
				}
				hold = winner
				return nil
			}
			return err
		}

		created = true
		return nil
	})
	if err != nil {
		return domain.Hold{}, false, err
	}

	return withEffectiveStatus(hold, now), created, nil
}

// List returns the client's holds filtered by status, newest first. ACTIVE
// excludes holds that have lapsed past their expiry.
func (s *HoldService) List(
	ctx context.Context,
	clientID string,
	filter domain.StatusFilter,
) ([]domain.Hold, error) {
	now := s.now()

	holds, err := s.Store.Holds().ListByClient(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Hold, 0, len(holds))
	for _, h := range holds {
		if filter == domain.FilterActive && !h.IsActive(now) {
			continue
		}
		out = append(out, withEffectiveStatus(h, now))
	}
	return out, nil
}

// Check reports whether the client currently has any active hold and the
// coarse kind: FRAUD when any active hold is fraud-typed, NON_FRAUD when
// active holds exist but none is, NONE otherwise.
func (s *HoldService) Check(ctx context.Context, clientID string) (domain.CheckResult, error) {
	active, err := s.List(ctx, clientID, domain.FilterActive)
	if err != nil {
		return domain.CheckResult{}, err
	}

	result := domain.CheckResult{
		Blocked:     len(active) > 0,
		Kind:        domain.CheckKindNone,
		ActiveHolds: active,
	}
	if !result.Blocked {
		return result, nil
	}

	result.Kind = domain.CheckKindNonFraud
	for _, h := range active {
		if h.Type == domain.HoldTypeFraudSuspect {
			result.Kind = domain.CheckKindFraud
			break
		}
	}
	return result, nil
}

// Get returns the hold matching both ids, or ErrHoldNotFound.
func (s *HoldService) Get(ctx context.Context, clientID, holdID string) (domain.Hold, error) {
	h, err := s.Store.Holds().GetOne(ctx, clientID, holdID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Hold{}, domain.ErrHoldNotFound
		}
		return domain.Hold{}, err
	}
	return withEffectiveStatus(h, s.now()), nil
}

type ReleaseHoldInput struct {
	ClientID   string
	HoldID     string
	Reason     *string
	ReleasedBy string
}

// Release transitions a hold to RELEASED. Only holds whose effective status
// is ACTIVE may be released; anything else answers ErrHoldNotActive, so a
// second release and a lapsed hold conflict the same way.
//
// TODO: decide whether the release body's comment should be persisted; the
// current contract accepts and drops it.
func (s *HoldService) Release(ctx context.Context, in ReleaseHoldInput) (domain.Hold, error) {
	now := s.now()

	var hold domain.Hold
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		h, err := tx.Holds().GetOne(ctx, in.ClientID, in.HoldID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.ErrHoldNotFound
			}
			return err
		}

		if h.EffectiveStatus(now) != domain.HoldStatusActive {
			return domain.ErrHoldNotActive
		}

		updated, err := tx.Holds().UpdateRelease(ctx, h.ID, in.ReleasedBy, in.Reason, now)
		if err != nil {
			return err
		}
		hold = updated
		return nil
	})
	if err != nil {
		return domain.Hold{}, err
	}

	return hold, nil
}

// withEffectiveStatus returns a copy with Status normalized to the
// externally visible value; persisted rows never change here.
func withEffectiveStatus(h domain.Hold, now time.Time) domain.Hold {
	h.Status = h.EffectiveStatus(now)
	return h
}
