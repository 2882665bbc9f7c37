package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

type OutcomeStatus string

const (
	OutcomeSuccess        OutcomeStatus = "success"
	OutcomeRejected       OutcomeStatus = "rejected"
	OutcomeTransportError OutcomeStatus = "transport_error"
)

func (s OutcomeStatus) Valid() bool {
	switch s {
	case OutcomeSuccess, OutcomeRejected, OutcomeTransportError:
		return true
	default:
		return false
	}
}
