package ride

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

// Report is the result of one scenario run.
type Report struct {
	Scenario string
	Final    models.Snapshot
	Outcomes []models.Outcome
	Duration time.Duration
}

// Denials counts denied outcomes.
func (r Report) Denials() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Denied() {
			n++
		}
	}
	return n
}

// Runner plays scripted scenarios, each on its own session.
type Runner struct {
	output      Output
	observers   []Reporter
	parallelism int
	log         logger.Logger
}

// NewRunner creates a runner. Observers receive every outcome of every session
// and must be safe for concurrent use when parallelism is above one.
func NewRunner(output Output, parallelism int, log logger.Logger, observers ...Reporter) *Runner {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Runner{
		output:      output,
		observers:   observers,
		parallelism: parallelism,
		log:         log,
	}
}

// Run plays the named scenarios (all of them when names is empty) and writes
// their output to w in the requested order.
func (r *Runner) Run(ctx context.Context, w io.Writer, names ...string) ([]Report, error) {
	ctx = wrap.WithAction(ctx, types.ActionScenarioRun)

	scenarios, err := resolveScenarios(names)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	reports := make([]Report, len(scenarios))
	buffers := make([]bytes.Buffer, len(scenarios))
	errs := make([]error, len(scenarios))

	pool := pond.NewPool(r.parallelism)
	group := pool.NewGroup()
	for i := range scenarios {
		group.Submit(func() {
			if r.output != nil {
				r.output.Heading(&buffers[i], i+1, scenarios[i].Title)
			}
			reports[i], errs[i] = r.play(ctx, scenarios[i], &buffers[i])
		})
	}
	waitErr := group.Wait()
	pool.StopAndWait()

	for i := range buffers {
		if _, err := buffers[i].WriteTo(w); err != nil {
			return reports, wrap.Error(ctx, fmt.Errorf("failed to write scenario output: %w", err))
		}
	}

	if err := errors.Join(append(errs, waitErr)...); err != nil {
		return reports, wrap.Error(ctx, err)
	}

	return reports, nil
}

// play runs one scenario on a fresh session owned by the calling task.
// Observers hear about the scenario on every exit path, interrupted or not.
func (r *Runner) play(ctx context.Context, sc Scenario, w io.Writer) (report Report, err error) {
	ctx = wrap.WithScenario(ctx, sc.Name)
	start := time.Now()

	rec := &Recorder{}
	reporters := MultiReporter{rec}
	if r.output != nil {
		reporters = append(reporters, r.output.ForSession(w))
	}
	reporters = append(reporters, r.observers...)

	sess := NewSession(ctx, reporters, r.log)
	ctx = wrap.WithSessionID(ctx, sess.ID().String())

	defer func() {
		report = Report{
			Scenario: sc.Name,
			Final:    sess.Snapshot(),
			Outcomes: rec.Outcomes(),
			Duration: time.Since(start),
		}
		r.finish(ctx, report, len(sc.Steps), err)
	}()

	for _, st := range sc.Steps {
		if cerr := ctx.Err(); cerr != nil {
			return Report{}, wrap.Error(ctx, fmt.Errorf("scenario %s interrupted: %w", sc.Name, cerr))
		}
		sess.Apply(ctx, st.Action, st.Payload)
	}

	return Report{}, nil
}

func (r *Runner) finish(ctx context.Context, report Report, steps int, err error) {
	for _, o := range r.observers {
		if so, ok := o.(ScenarioObserver); ok {
			so.ScenarioFinished(ctx, report)
		}
	}

	ctx = wrap.WithAction(ctx, types.ActionScenarioFinished)
	if err != nil {
		r.log.Warn(ctx, "scenario interrupted",
			"final_state", report.Final.State.String(),
			"applied", len(report.Outcomes)-1,
			"steps", steps,
		)
		return
	}

	r.log.Info(ctx, "scenario finished",
		"final_state", report.Final.State.String(),
		"steps", steps,
		"denials", report.Denials(),
	)
}
