package domain

import "time"

// Client is a bank client holds can be placed on. Clients are provisioned
// ahead of time; the hold lifecycle only ever reads them.
type Client struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
