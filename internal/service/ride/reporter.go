package ride

import (
	"context"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
)

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, outcome models.Outcome)

func (f ReporterFunc) Report(ctx context.Context, outcome models.Outcome) {
	f(ctx, outcome)
}

// MultiReporter fans one outcome out to every reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(ctx context.Context, outcome models.Outcome) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, outcome)
		}
	}
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, models.Outcome) {}

// Recorder keeps every reported outcome. It belongs to one session and is not
// safe for concurrent use.
type Recorder struct {
	outcomes []models.Outcome
}

func (r *Recorder) Report(_ context.Context, outcome models.Outcome) {
	r.outcomes = append(r.outcomes, outcome)
}

// Outcomes returns a copy of the recorded outcomes.
func (r *Recorder) Outcomes() []models.Outcome {
	out := make([]models.Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Last returns the latest outcome.
func (r *Recorder) Last() (models.Outcome, bool) {
	if len(r.outcomes) == 0 {
		return models.Outcome{}, false
	}
	return r.outcomes[len(r.outcomes)-1], true
}
