package types

import (
	"fmt"
)

// RideState is the lifecycle state of a ride session.
type RideState uint8

const (
	StateIdle RideState = iota
	StateCarSelected
	StateOrderConfirmed
	StateCarArrived
	StateInTrip
	StateTripCompleted
	StateTripCancelled
)

var stateNames = [...]string{
	StateIdle:           "Idle",
	StateCarSelected:    "CarSelected",
	StateOrderConfirmed: "OrderConfirmed",
	StateCarArrived:     "CarArrived",
	StateInTrip:         "InTrip",
	StateTripCompleted:  "TripCompleted",
	StateTripCancelled:  "TripCancelled",
}

func (s RideState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("RideState(%d)", uint8(s))
}

// Valid reports whether s is one of the seven lifecycle states.
func (s RideState) Valid() bool {
	return int(s) < len(stateNames)
}

// IsTerminal is true only for TripCancelled. TripCompleted still accepts payment actions.
func (s RideState) IsTerminal() bool {
	return s == StateTripCancelled
}

// States returns all states in lifecycle order.
func States() []RideState {
	out := make([]RideState, len(stateNames))
	for i := range stateNames {
		out[i] = RideState(i)
	}
	return out
}

func ParseRideState(s string) (RideState, error) {
	for i, name := range stateNames {
		if name == s {
			return RideState(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, s)
}

func (s RideState) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *RideState) UnmarshalText(b []byte) error {
	parsed, err := ParseRideState(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
