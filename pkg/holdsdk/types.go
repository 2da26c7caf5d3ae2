package holdsdk

import "time"

// Hold is the wire representation of a payment hold.
type Hold struct {
	HoldID         string     `json:"holdId"`
	ClientID       string     `json:"clientId"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	Comment        *string    `json:"comment"`
	Source         *string    `json:"source"`
	CreatedAt      time.Time  `json:"createdAt"`
	CreatedBy      string     `json:"createdBy"`
	ExpiresAt      *time.Time `json:"expiresAt"`
	ReleasedAt     *time.Time `json:"releasedAt"`
	ReleasedBy     *string    `json:"releasedBy"`
	ReleaseReason  *string    `json:"releaseReason"`
	IdempotencyKey string     `json:"idempotencyKey"`
}

// CreateHoldRequest is the body of POST /v1/clients/{clientId}/payment-holds.
// The idempotency key travels in the Idempotency-Key header, not the body.
type CreateHoldRequest struct {
	Type      string     `json:"type"`
	Comment   *string    `json:"comment,omitempty"`
	Source    *string    `json:"source,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// ReleaseHoldRequest is the body of the :release operation. Comment is
// accepted for forward compatibility but not persisted.
type ReleaseHoldRequest struct {
	Reason  *string `json:"reason,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type ListHoldsResponse struct {
	Items []Hold `json:"items"`
}

// CheckHoldsResponse answers "is this client currently blocked, and why".
type CheckHoldsResponse struct {
	Blocked     bool   `json:"blocked"`
	Kind        string `json:"kind"` // FRAUD, NON_FRAUD or NONE
	ActiveHolds []Hold `json:"activeHolds"`
}

type CreateClientRequest struct {
	Name string `json:"name"`
}

// ClientInfo is the wire representation of a bank client.
type ClientInfo struct {
	ClientID  string    `json:"clientId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
