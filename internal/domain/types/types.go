package types

// RunMode selects how the ride engine is driven.
type RunMode string

func (m RunMode) String() string {
	return string(m)
}

// Scenario mode runs scripted rides, interactive mode lets an operator pick actions.
const (
	ModeScenario    RunMode = "scenario"
	ModeInteractive RunMode = "interactive"
)

// Locale of the console report.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)
