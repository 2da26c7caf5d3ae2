package domain

import "time"

// HoldType classifies why a hold was placed. Immutable after creation.
type HoldType string

const (
	HoldTypeFraudSuspect         HoldType = "FRAUD_SUSPECT"
	HoldTypeIncorrectBeneficiary HoldType = "INCORRECT_BENEFICIARY_DETAILS"
)

// ParseHoldType validates a wire value against the known hold types.
func ParseHoldType(s string) (HoldType, error) {
	switch HoldType(s) {
	case HoldTypeFraudSuspect, HoldTypeIncorrectBeneficiary:
		return HoldType(s), nil
	default:
		return "", ErrInvalidHoldType
	}
}

// HoldStatus is a hold's lifecycle state. Only ACTIVE and RELEASED are ever
// persisted; EXPIRED is derived at read time from expires_at.
type HoldStatus string

const (
	HoldStatusActive   HoldStatus = "ACTIVE"
	HoldStatusReleased HoldStatus = "RELEASED"
	HoldStatusExpired  HoldStatus = "EXPIRED"
)

// StatusFilter selects which holds a list query returns.
type StatusFilter string

const (
	FilterActive   StatusFilter = "ACTIVE"
	FilterReleased StatusFilter = "RELEASED"
	FilterAll      StatusFilter = "ALL"
)

// ParseStatusFilter validates a query value, defaulting to ACTIVE when
// empty.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterActive, nil
	}
	switch StatusFilter(s) {
	case FilterActive, FilterReleased, FilterAll:
		return StatusFilter(s), nil
	default:
		return "", ErrInvalidStatusFilter
	}
}

// Hold is a payment hold placed on a bank client. Rows are append-mostly:
// the only mutation ever applied is the ACTIVE -> RELEASED transition, which
// stamps the three release fields exactly once.
type Hold struct {
	ID             string
	ClientID       string
	Type           HoldType
	Status         HoldStatus
	Comment        *string
	Source         *string
	CreatedAt      time.Time
	CreatedBy      string
	ExpiresAt      *time.Time
	ReleasedAt     *time.Time
	ReleasedBy     *string
	ReleaseReason  *string
	IdempotencyKey string
}

// EffectiveStatus derives the externally visible status at the given time.
// An ACTIVE hold past its expires_at reads as EXPIRED without any row
// mutation; expiry is never an active transition.
func (h Hold) EffectiveStatus(now time.Time) HoldStatus {
	if h.Status == HoldStatusActive && h.ExpiresAt != nil && !h.ExpiresAt.After(now) {
		return HoldStatusExpired
	}
	return h.Status
}

// IsActive reports whether the hold still blocks payments at the given time.
func (h Hold) IsActive(now time.Time) bool {
	return h.EffectiveStatus(now) == HoldStatusActive
}

// CheckKind is the coarse classification returned by the check operation.
type CheckKind string

const (
	CheckKindNone     CheckKind = "NONE"
	CheckKindFraud    CheckKind = "FRAUD"
	CheckKindNonFraud CheckKind = "NON_FRAUD"
)

// CheckResult summarises whether a client is currently blocked and why.
type CheckResult struct {
	Blocked     bool
	Kind        CheckKind
	ActiveHolds []Hold
}
