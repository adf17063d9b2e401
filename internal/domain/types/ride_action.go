package types

import "fmt"

// Action is an operation a caller invokes on a ride session.
type Action uint8

// ActNone is the zero value, used by outcomes that are not tied to an action.
const (
	ActNone Action = iota
	ActSelectCar
	ActConfirmOrder
	ActCarArrived
	ActStartTrip
	ActFinishTrip
	ActPay
	ActCancel
	ActDelay
	ActPaymentFailed
)

var actionNames = [...]string{
	ActNone:          "",
	ActSelectCar:     "selectCar",
	ActConfirmOrder:  "confirmOrder",
	ActCarArrived:    "carArrived",
	ActStartTrip:     "startTrip",
	ActFinishTrip:    "finishTrip",
	ActPay:           "pay",
	ActCancel:        "cancel",
	ActDelay:         "delay",
	ActPaymentFailed: "paymentFailed",
}

func (a Action) String() string {
	if a.Valid() {
		return actionNames[a]
	}
	if a == ActNone {
		return "none"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

func (a Action) Valid() bool {
	return a != ActNone && int(a) < len(actionNames)
}

// HasPayload reports whether the action takes a vehicle label.
func (a Action) HasPayload() bool {
	return a == ActSelectCar
}

// Actions returns all nine actions.
func Actions() []Action {
	out := make([]Action, 0, len(actionNames)-1)
	for i := 1; i < len(actionNames); i++ {
		out = append(out, Action(i))
	}
	return out
}

func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if i > 0 && name == s {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (a Action) MarshalText() ([]byte, error) {
	if a == ActNone {
		return []byte{}, nil
	}
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(b []byte) error {
	parsed, err := ParseAction(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
