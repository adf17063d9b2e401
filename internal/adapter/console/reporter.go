package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/internal/service/ride"
)

// Console renders ride outcomes as text lines in one locale.
type Console struct {
	printer *message.Printer
}

func New(locale types.Locale) (*Console, error) {
	var tag language.Tag
	switch locale {
	case types.LocaleEN, "":
		tag = language.English
	case types.LocaleRU:
		tag = language.Russian
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidLocale, locale)
	}

	cat, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to build message catalog: %w", err)
	}

	return &Console{
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}, nil
}

// Heading writes a blank line and the scenario title.
func (c *Console) Heading(w io.Writer, n int, title string) {
	fmt.Fprintf(w, "\n %s \n", c.printer.Sprintf(msgHeading, n, c.printer.Sprintf(title)))
}

// ForSession returns a reporter writing to w.
func (c *Console) ForSession(w io.Writer) ride.Reporter {
	return &sessionReporter{c: c, w: w}
}

// Lines renders the report lines of one outcome.
//
//	created:  [STATE] -> Idle
//	accepted: <effect>, [STATE] -> <new state>
//	denied:   Action '<action>' is not available in state '<state>'
func (c *Console) Lines(o models.Outcome) []string {
	p := c.printer

	switch o.Kind {
	case types.OutcomeCreated:
		return []string{p.Sprintf(msgState, o.To.String())}

	case types.OutcomeAccepted:
		lines := make([]string, 0, 2)
		if key, ok := noticeKeys[o.Notice]; ok {
			switch o.Notice {
			case types.NoticeCarSelected, types.NoticeCarChanged:
				lines = append(lines, p.Sprintf(key, o.Vehicle, o.Fare))
			default:
				lines = append(lines, p.Sprintf(key))
			}
		}
		return append(lines, p.Sprintf(msgState, o.To.String()))

	case types.OutcomeDenied:
		switch {
		case errors.Is(o.Reason, types.ErrVehicleRequired):
			return []string{p.Sprintf(msgVehicleRequired, o.Action.String(), o.From.String())}
		case o.Reason == nil, errors.Is(o.Reason, types.ErrActionDenied):
			return []string{p.Sprintf(msgDenied, o.Action.String(), o.From.String())}
		default:
			return []string{p.Sprintf(msgRejected, o.Action.String(), o.From.String(), o.Reason.Error())}
		}
	}

	return nil
}

type sessionReporter struct {
	c *Console
	w io.Writer
}

func (r *sessionReporter) Report(_ context.Context, o models.Outcome) {
	for _, line := range r.c.Lines(o) {
		fmt.Fprintln(r.w, line)
	}
}
