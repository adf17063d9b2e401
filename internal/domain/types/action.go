package types

// Log actions, written to the "action" attribute of log records.
const (
	ActionSessionCreated = "session_created"
	ActionTransition     = "ride_transition"
	ActionDenied         = "ride_action_denied"

	ActionScenarioRun      = "scenario_run"
	ActionScenarioFinished = "scenario_finished"
	ActionInteractiveRun   = "interactive_run"

	ActionAppStart = "app_start"
	ActionAppRun   = "app_run"

	ActionHTTPServerStart = "http_server_start"
	ActionHTTPServerStop  = "http_server_stop"
)
