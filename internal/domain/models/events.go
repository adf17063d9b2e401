package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
)

// Outcome is the single result reported for every session call.
type Outcome struct {
	SessionID uuid.UUID         `json:"session_id"`
	Kind      types.OutcomeKind `json:"kind"`
	Action    types.Action      `json:"action,omitempty"`
	From      types.RideState   `json:"from"`
	To        types.RideState   `json:"to"`
	Notice    types.Notice      `json:"notice,omitempty"`

	// Session data after the call
	Vehicle        string  `json:"vehicle,omitempty"`
	Fare           float64 `json:"fare"`
	PaymentSettled bool    `json:"payment_settled"`

	// Reason is set only for denials
	Reason error     `json:"-"`
	At     time.Time `json:"at"`
}

func (o Outcome) Accepted() bool {
	return o.Kind == types.OutcomeAccepted
}

func (o Outcome) Denied() bool {
	return o.Kind == types.OutcomeDenied
}

// StateChanged is true for accepted transitions that moved to another state.
func (o Outcome) StateChanged() bool {
	return o.Accepted() && o.From != o.To
}
