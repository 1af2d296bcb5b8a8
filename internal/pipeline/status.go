package pipeline

// Status is the status of a pipeline execution
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusSucceeded  Status = "Succeeded"
	StatusCancelled  Status = "Cancelled"
	StatusSuperseded Status = "Superseded"
	StatusStopped    Status = "Stopped"
	StatusStopping   Status = "Stopping"
	StatusFailed     Status = "Failed"

	// StatusUndefined is used for missing and unrecognized statuses
	StatusUndefined Status = "Undefined"
)

// ParseStatus maps a status reported by the pipeline service to a Status. Unknown values map to
// StatusUndefined.
func ParseStatus(s string) Status {
	switch status := Status(s); status {
	case StatusInProgress,
		StatusSucceeded,
		StatusCancelled,
		StatusSuperseded,
		StatusStopped,
		StatusStopping,
		StatusFailed:
		return status
	default:
		return StatusUndefined
	}
}

// Replaced returns true if the execution has been cancelled or superseded by a newer execution of the
// same pipeline, which is what happens when a pipeline mutates itself
func (s Status) Replaced() bool {
	return s == StatusCancelled || s == StatusSuperseded
}
