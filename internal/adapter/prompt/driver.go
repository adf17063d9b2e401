package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/internal/service/ride"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

const exitItem = "[Exit]"

// SessionCloser is told when the interactive session ends.
type SessionCloser interface {
	SessionFinished(final models.Snapshot)
}

// Driver lets an operator invoke actions on one ride session.
type Driver struct {
	chooser   Chooser
	output    ride.Output
	observers []ride.Reporter
	log       logger.Logger
}

func NewDriver(chooser Chooser, output ride.Output, log logger.Logger, observers ...ride.Reporter) *Driver {
	return &Driver{
		chooser:   chooser,
		output:    output,
		observers: observers,
		log:       log,
	}
}

// Run drives a new session until the operator exits. Denied actions are
// reported like any other outcome and the loop continues.
func (d *Driver) Run(ctx context.Context, w io.Writer) (models.Snapshot, error) {
	ctx = wrap.WithAction(ctx, types.ActionInteractiveRun)

	reporters := ride.MultiReporter{d.output.ForSession(w)}
	reporters = append(reporters, d.observers...)

	sess := ride.NewSession(ctx, reporters, d.log)
	defer d.finish(sess)

	actions := types.Actions()
	for {
		if err := ctx.Err(); err != nil {
			return sess.Snapshot(), wrap.Error(ctx, err)
		}

		idx, err := d.chooser.Select(label(sess.Snapshot()), menu(sess.State(), actions))
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return sess.Snapshot(), nil
			}
			return sess.Snapshot(), wrap.Error(ctx, fmt.Errorf("failed to read action: %w", err))
		}
		if idx < 0 || idx >= len(actions) {
			return sess.Snapshot(), nil
		}

		action := actions[idx]
		var payload string
		if action.HasPayload() {
			payload, err = d.chooser.Input("Vehicle")
			if err != nil {
				if errors.Is(err, ErrQuit) {
					return sess.Snapshot(), nil
				}
				return sess.Snapshot(), wrap.Error(ctx, fmt.Errorf("failed to read vehicle: %w", err))
			}
		}

		sess.Apply(ctx, action, payload)
	}
}

func (d *Driver) finish(sess *ride.Session) {
	for _, o := range d.observers {
		if c, ok := o.(SessionCloser); ok {
			c.SessionFinished(sess.Snapshot())
		}
	}
}

func label(s models.Snapshot) string {
	if s.HasVehicle() {
		return fmt.Sprintf("%s | %s, fare %.1f", s.State, s.Vehicle, s.Fare)
	}
	return s.State.String()
}

// menu lists every action, marking the ones the state accepts, plus exit.
func menu(state types.RideState, actions []types.Action) []string {
	accepted := ride.Accepts(state)
	items := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		mark := "  "
		if slices.Contains(accepted, a) {
			mark = "* "
		}
		items = append(items, mark+a.String())
	}
	return append(items, exitItem)
}
