package domain

import "time"

type Slot struct {
	ID        string    `json:"id"`
	StartsAt  time.Time `json:"debut"`
	EndsAt    time.Time `json:"fin"`
	Available bool      `json:"disponible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSlotInput accepts either explicit RFC3339 instants (Debut/Fin) or a
// local day plus wall-clock times (Date/Start/End). Exactly one shape must
// resolve.
type CreateSlotInput struct {
	Debut     string
	Fin       string
	Date      string
	Start     string
	End       string
	Available *bool
}

type SlotPatch struct {
	StartsAt  *time.Time
	EndsAt    *time.Time
	Available *bool
}

type TimeRange struct {
	Start string
	End   string
}

type BulkCreateInput struct {
	Date            string
	Ranges          []TimeRange
	IntervalMinutes int
}
