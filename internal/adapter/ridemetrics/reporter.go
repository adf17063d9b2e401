package ridemetrics

import (
	"context"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/internal/service/ride"
	"github.com/Temutjin2k/ride-lifecycle/pkg/metrics"
)

// Reporter turns ride outcomes into prometheus metrics. Safe for concurrent use.
type Reporter struct {
	service string
}

func New(service string) *Reporter {
	return &Reporter{service: service}
}

func (r *Reporter) Report(_ context.Context, o models.Outcome) {
	switch o.Kind {
	case types.OutcomeCreated:
		metrics.SessionOpened(r.service)
	case types.OutcomeAccepted:
		metrics.RecordTransition(r.service, o.From.String(), o.Action.String(), o.To.String())
	case types.OutcomeDenied:
		metrics.RecordDenial(r.service, o.From.String(), o.Action.String())
	}
}

// ScenarioFinished closes the scenario's session in the metrics.
func (r *Reporter) ScenarioFinished(_ context.Context, rep ride.Report) {
	metrics.RecordScenario(r.service, rep.Scenario, rep.Duration)
	r.SessionFinished(rep.Final)
}

// SessionFinished is called when a caller is done with a session.
func (r *Reporter) SessionFinished(final models.Snapshot) {
	metrics.SessionClosed(r.service, final.State.String())
}
