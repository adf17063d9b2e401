package ride

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

// Session tracks the lifecycle of a single ride.
//
// A session is owned by one caller and processes one action at a time; it
// holds no locks. State changes only through Transition, so the session data
// can never leave the combinations the table allows.
type Session struct {
	data     models.Snapshot
	reporter Reporter
	log      logger.Logger
	now      func() time.Time
}

// NewSession creates a session in Idle and reports its starting state.
func NewSession(ctx context.Context, reporter Reporter, log logger.Logger) *Session {
	if reporter == nil {
		reporter = nopReporter{}
	}

	s := &Session{
		data: models.Snapshot{
			ID:    uuid.New(),
			State: types.StateIdle,
		},
		reporter: reporter,
		log:      log,
		now:      time.Now,
	}

	ctx = wrap.WithAction(wrap.WithSessionID(ctx, s.data.ID.String()), types.ActionSessionCreated)
	s.log.Debug(ctx, "ride session created", "state", s.data.State.String())

	s.reporter.Report(ctx, s.outcome(types.OutcomeCreated, types.ActNone, s.data.State, types.NoticeNone, nil))

	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.data.ID
}

// State returns the current lifecycle state.
func (s *Session) State() types.RideState {
	return s.data.State
}

// Snapshot returns a copy of the session data.
func (s *Session) Snapshot() models.Snapshot {
	return s.data
}

// Apply runs action against the current state. Exactly one outcome is
// reported and returned; a denied action leaves every field unchanged.
func (s *Session) Apply(ctx context.Context, action types.Action, payload string) models.Outcome {
	ctx = wrap.WithSessionID(ctx, s.data.ID.String())
	from := s.data.State

	res := Transition(from, action, payload)
	if !res.Accepted {
		ctx = wrap.WithAction(ctx, types.ActionDenied)
		s.log.Warn(ctx, "action denied",
			"ride_action", action.String(),
			"state", from.String(),
			"reason", res.Reason.Error(),
		)

		out := s.outcome(types.OutcomeDenied, action, from, types.NoticeNone, res.Reason)
		s.reporter.Report(ctx, out)
		return out
	}

	next := res.Effect.Apply(s.data)
	next.State = res.Next
	s.data = next

	ctx = wrap.WithAction(ctx, types.ActionTransition)
	s.log.Debug(ctx, "ride state changed",
		"ride_action", action.String(),
		"from", from.String(),
		"to", res.Next.String(),
		"vehicle", s.data.Vehicle,
		"fare", s.data.Fare,
		"payment_settled", s.data.PaymentSettled,
	)

	out := s.outcome(types.OutcomeAccepted, action, from, res.Notice, nil)
	s.reporter.Report(ctx, out)
	return out
}

func (s *Session) outcome(kind types.OutcomeKind, action types.Action, from types.RideState, notice types.Notice, reason error) models.Outcome {
	return models.Outcome{
		SessionID:      s.data.ID,
		Kind:           kind,
		Action:         action,
		From:           from,
		To:             s.data.State,
		Notice:         notice,
		Vehicle:        s.data.Vehicle,
		Fare:           s.data.Fare,
		PaymentSettled: s.data.PaymentSettled,
		Reason:         reason,
		At:             s.now(),
	}
}

// SelectCar chooses or replaces the vehicle; the label must not be empty.
func (s *Session) SelectCar(ctx context.Context, vehicle string) models.Outcome {
	return s.Apply(ctx, types.ActSelectCar, vehicle)
}

// ConfirmOrder sends the selected car on its way.
func (s *Session) ConfirmOrder(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActConfirmOrder, "")
}

// CarArrived marks the car as waiting for the passenger.
func (s *Session) CarArrived(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActCarArrived, "")
}

// StartTrip begins the ride.
func (s *Session) StartTrip(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActStartTrip, "")
}

// FinishTrip ends the ride and waits for payment.
func (s *Session) FinishTrip(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActFinishTrip, "")
}

// Pay settles the fare of a completed trip.
func (s *Session) Pay(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActPay, "")
}

// Cancel aborts the order before the trip starts.
func (s *Session) Cancel(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActCancel, "")
}

// Delay notifies the passenger that a confirmed car is late. Nothing changes.
func (s *Session) Delay(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActDelay, "")
}

// PaymentFailed records a failed payment attempt; Pay may follow.
func (s *Session) PaymentFailed(ctx context.Context) models.Outcome {
	return s.Apply(ctx, types.ActPaymentFailed, "")
}
