package types

// OutcomeKind tells what happened to a session after a call.
type OutcomeKind string

func (k OutcomeKind) String() string {
	return string(k)
}

const (
	OutcomeCreated  OutcomeKind = "CREATED"
	OutcomeAccepted OutcomeKind = "ACCEPTED"
	OutcomeDenied   OutcomeKind = "DENIED"
)
