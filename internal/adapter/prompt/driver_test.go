package prompt

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/console"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/internal/service/ride"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
)

// scripted answers menu picks by action name and vehicle prompts in order.
type scripted struct {
	picks    []string
	vehicles []string
	menus    [][]string
	err      error
}

func (s *scripted) Select(_ string, items []string) (int, error) {
	s.menus = append(s.menus, items)
	if len(s.picks) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, ErrQuit
	}
	pick := s.picks[0]
	s.picks = s.picks[1:]
	for i, item := range items {
		if item == pick || item == "* "+pick || item == "  "+pick {
			return i, nil
		}
	}
	return 0, errors.New("no such item: " + pick)
}

func (s *scripted) Input(string) (string, error) {
	if len(s.vehicles) == 0 {
		return "", ErrQuit
	}
	v := s.vehicles[0]
	s.vehicles = s.vehicles[1:]
	return v, nil
}

type closer struct {
	final *models.Snapshot
}

func (c *closer) Report(context.Context, models.Outcome) {}

func (c *closer) SessionFinished(final models.Snapshot) {
	c.final = &final
}

func newDriver(t *testing.T, ch Chooser, observers ...ride.Reporter) *Driver {
	t.Helper()
	out, err := console.New(types.LocaleEN)
	require.NoError(t, err)

	return NewDriver(ch, out, logger.New(slogt.New(t)), observers...)
}

func TestDriver_FullRide(t *testing.T) {
	ch := &scripted{
		picks:    []string{"selectCar", "confirmOrder", "carArrived", "startTrip", "finishTrip", "pay", exitItem},
		vehicles: []string{"Toyota Prius"},
	}
	obs := &closer{}

	var out bytes.Buffer
	final, err := newDriver(t, ch, obs).Run(context.Background(), &out)
	require.NoError(t, err)

	assert.Equal(t, types.StateTripCompleted, final.State)
	assert.True(t, final.PaymentSettled)
	assert.Contains(t, out.String(), "Car selected: Toyota Prius, fare: 100.0")
	require.NotNil(t, obs.final)
	assert.Equal(t, final, *obs.final)
}

func TestDriver_MarksAcceptedActions(t *testing.T) {
	ch := &scripted{}

	_, err := newDriver(t, ch).Run(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)

	require.Len(t, ch.menus, 1)
	assert.Equal(t, []string{
		"* selectCar", "  confirmOrder", "  carArrived", "  startTrip", "  finishTrip",
		"  pay", "* cancel", "  delay", "  paymentFailed", exitItem,
	}, ch.menus[0])
}

func TestDriver_DeniedActionContinues(t *testing.T) {
	ch := &scripted{picks: []string{"pay", "cancel", "selectCar"}, vehicles: []string{"Kia Rio"}}

	var out bytes.Buffer
	final, err := newDriver(t, ch).Run(context.Background(), &out)
	require.NoError(t, err)

	assert.Equal(t, types.StateTripCancelled, final.State)
	assert.Contains(t, out.String(), "Action 'pay' is not available in state 'Idle'")
	assert.Contains(t, out.String(), "Action 'selectCar' is not available in state 'TripCancelled'")
}

func TestDriver_ChooserError(t *testing.T) {
	boom := errors.New("tty closed")
	ch := &scripted{err: boom}

	final, err := newDriver(t, ch).Run(context.Background(), &bytes.Buffer{})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, types.StateIdle, final.State)
}

// cancelling answers one menu pick and cancels the run while doing so.
type cancelling struct {
	scripted
	cancel context.CancelFunc
}

func (c *cancelling) Select(label string, items []string) (int, error) {
	c.cancel()
	return c.scripted.Select(label, items)
}

func TestDriver_StopsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := &cancelling{
		scripted: scripted{picks: []string{"cancel", "selectCar"}},
		cancel:   cancel,
	}

	final, err := newDriver(t, ch).Run(ctx, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)

	// the pick made while cancelling is applied, nothing after it
	assert.Equal(t, types.StateTripCancelled, final.State)
	assert.Len(t, ch.menus, 1)
}
