package ride

import (
	"context"
	"io"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
)

// Reporter receives the outcome of every session call.
type Reporter interface {
	Report(ctx context.Context, outcome models.Outcome)
}

// ScenarioObserver is notified by the runner when a scenario finishes.
// Reporters passed to the runner may implement it.
type ScenarioObserver interface {
	ScenarioFinished(ctx context.Context, report Report)
}

// Output renders scenario output.
type Output interface {
	// Heading writes the title of the n-th scenario (1-based).
	Heading(w io.Writer, n int, title string)
	// ForSession returns a reporter writing a session's outcomes to w.
	ForSession(w io.Writer) Reporter
}
