package models

import (
	"github.com/google/uuid"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
)

// Snapshot is a copy of the session data at a point in time.
type Snapshot struct {
	ID             uuid.UUID       `json:"session_id"`
	State          types.RideState `json:"state"`
	Vehicle        string          `json:"vehicle,omitempty"` // empty while no car is selected
	Fare           float64         `json:"fare"`
	PaymentSettled bool            `json:"payment_settled"`
}

// HasVehicle reports whether a vehicle has been assigned.
func (s Snapshot) HasVehicle() bool {
	return s.Vehicle != ""
}

// Effect is the side effect of an accepted transition.
// Vehicle and fare are always set together.
type Effect struct {
	SetVehicle bool
	Vehicle    string
	Fare       float64

	SetPayment     bool
	PaymentSettled bool
}

// IsZero is true for transitions that change no session field.
func (e Effect) IsZero() bool {
	return !e.SetVehicle && !e.SetPayment
}

// Apply returns a copy of s with the effect applied. State is not touched.
func (e Effect) Apply(s Snapshot) Snapshot {
	if e.SetVehicle {
		s.Vehicle = e.Vehicle
		s.Fare = e.Fare
	}
	if e.SetPayment {
		s.PaymentSettled = e.PaymentSettled
	}
	return s
}
