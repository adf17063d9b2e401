package types

import "errors"

var (
	ErrActionDenied    = errors.New("action is not available in current state")
	ErrVehicleRequired = errors.New("vehicle must be provided")
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownState    = errors.New("unknown ride state")

	ErrUnknownScenario = errors.New("unknown scenario")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidLocale   = errors.New("invalid locale")
)
