package ride

import (
	"fmt"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
)

// Step is one action invocation in a scripted scenario.
type Step struct {
	Action  types.Action
	Payload string
}

// Scenario is a fixed script run against a fresh session.
type Scenario struct {
	Name  string
	Title string
	Steps []Step
}

func step(a types.Action) Step {
	return Step{Action: a}
}

func pick(vehicle string) Step {
	return Step{Action: types.ActSelectCar, Payload: vehicle}
}

var builtin = []Scenario{
	{
		Name:  "normal-trip",
		Title: "normal trip",
		Steps: []Step{
			pick("Toyota Prius"),
			step(types.ActConfirmOrder),
			step(types.ActDelay),
			step(types.ActCarArrived),
			step(types.ActStartTrip),
			step(types.ActFinishTrip),
			step(types.ActPay),
		},
	},
	{
		Name:  "cancel-before-confirm",
		Title: "cancel before confirmation",
		Steps: []Step{
			pick("Kia Rio"),
			step(types.ActCancel),
			step(types.ActConfirmOrder),
		},
	},
	{
		Name:  "cancel-after-arrival",
		Title: "car arrived but the order was cancelled",
		Steps: []Step{
			pick("Hyundai Solaris"),
			step(types.ActConfirmOrder),
			step(types.ActCarArrived),
			step(types.ActCancel),
		},
	},
	{
		Name:  "confirm-from-idle",
		Title: "confirmation without a car",
		Steps: []Step{
			step(types.ActConfirmOrder),
		},
	},
	{
		Name:  "reselect-car",
		Title: "car changed before confirmation",
		Steps: []Step{
			pick("A"),
			pick("B"),
		},
	},
	{
		Name:  "payment-retry",
		Title: "payment failed, then retried",
		Steps: []Step{
			pick("Skoda Octavia"),
			step(types.ActConfirmOrder),
			step(types.ActCarArrived),
			step(types.ActStartTrip),
			step(types.ActFinishTrip),
			step(types.ActPaymentFailed),
			step(types.ActPay),
		},
	},
}

// Scenarios returns the built-in scenarios in their canonical order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(builtin))
	copy(out, builtin)
	return out
}

// ScenarioNames returns the names of the built-in scenarios.
func ScenarioNames() []string {
	names := make([]string, len(builtin))
	for i, sc := range builtin {
		names[i] = sc.Name
	}
	return names
}

// LookupScenario finds a built-in scenario by name.
func LookupScenario(name string) (Scenario, error) {
	for _, sc := range builtin {
		if sc.Name == name {
			return sc, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", types.ErrUnknownScenario, name)
}

// resolveScenarios maps names to scenarios; no names means all of them.
func resolveScenarios(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return Scenarios(), nil
	}

	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		sc, err := LookupScenario(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
