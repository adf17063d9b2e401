package ride

import (
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
)

// Fares applied on vehicle selection. The first selection from Idle and a
// re-selection while CarSelected use different tariffs.
const (
	InitialFare  = 100.0
	ReselectFare = 110.0
)

// Result of a transition lookup. When Accepted is false, Reason tells why and
// nothing else is set.
type Result struct {
	Accepted bool
	Next     types.RideState
	Effect   models.Effect
	Notice   types.Notice
	Reason   error
}

func accept(next types.RideState, notice types.Notice, effect models.Effect) Result {
	return Result{Accepted: true, Next: next, Notice: notice, Effect: effect}
}

func reject(reason error) Result {
	return Result{Reason: reason}
}

// Transition looks up the rule for (state, action). It is pure: the caller
// applies the effect and the next state. Payload is read only by selectCar.
func Transition(state types.RideState, action types.Action, payload string) Result {
	if !state.Valid() {
		return reject(types.ErrUnknownState)
	}
	if !action.Valid() {
		return reject(types.ErrUnknownAction)
	}

	switch state {
	case types.StateIdle:
		switch action {
		case types.ActSelectCar:
			return selectCar(payload, InitialFare, types.NoticeCarSelected)
		case types.ActCancel:
			return accept(types.StateTripCancelled, types.NoticeCancelledIdle, models.Effect{})
		}

	case types.StateCarSelected:
		switch action {
		case types.ActSelectCar:
			return selectCar(payload, ReselectFare, types.NoticeCarChanged)
		case types.ActConfirmOrder:
			return accept(types.StateOrderConfirmed, types.NoticeOrderConfirmed, models.Effect{})
		case types.ActCancel:
			return accept(types.StateTripCancelled, types.NoticeCancelledSelected, models.Effect{})
		}

	case types.StateOrderConfirmed:
		switch action {
		case types.ActCarArrived:
			return accept(types.StateCarArrived, types.NoticeCarArrived, models.Effect{})
		case types.ActCancel:
			return accept(types.StateTripCancelled, types.NoticeCancelledEnRoute, models.Effect{})
		case types.ActDelay:
			return accept(types.StateOrderConfirmed, types.NoticeDelayed, models.Effect{})
		}

	case types.StateCarArrived:
		switch action {
		case types.ActStartTrip:
			return accept(types.StateInTrip, types.NoticeTripStarted, models.Effect{})
		case types.ActCancel:
			return accept(types.StateTripCancelled, types.NoticeCancelledArrived, models.Effect{})
		}

	case types.StateInTrip:
		if action == types.ActFinishTrip {
			return accept(types.StateTripCompleted, types.NoticeTripFinished, models.Effect{})
		}

	case types.StateTripCompleted:
		switch action {
		case types.ActPay:
			return accept(types.StateTripCompleted, types.NoticePaymentSucceeded,
				models.Effect{SetPayment: true, PaymentSettled: true})
		case types.ActPaymentFailed:
			return accept(types.StateTripCompleted, types.NoticePaymentFailed,
				models.Effect{SetPayment: true, PaymentSettled: false})
		}

	case types.StateTripCancelled:
		// terminal
	}

	return reject(types.ErrActionDenied)
}

// selectCar is accepted in Idle and CarSelected and always lands in CarSelected.
func selectCar(vehicle string, fare float64, notice types.Notice) Result {
	if vehicle == "" {
		return reject(types.ErrVehicleRequired)
	}
	return accept(types.StateCarSelected, notice, models.Effect{
		SetVehicle: true,
		Vehicle:    vehicle,
		Fare:       fare,
	})
}

// Accepts lists the actions that state accepts, in declaration order.
func Accepts(state types.RideState) []types.Action {
	var out []types.Action
	for _, a := range types.Actions() {
		if Transition(state, a, "vehicle").Accepted {
			out = append(out, a)
		}
	}
	return out
}
