package model

import "strings"

type StatusLevel string

const (
	StatusLevelNone    StatusLevel = ""
	StatusLevelOK      StatusLevel = "ok"
	StatusLevelPending StatusLevel = "pending"
	StatusLevelRunning StatusLevel = "running"
	StatusLevelWarning StatusLevel = "warning"
	StatusLevelError   StatusLevel = "error"
	StatusLevelAborted StatusLevel = "aborted"
)

// StatusBadge is the visual indicator of a run status.
type StatusBadge struct {
	Level StatusLevel
	Label string
}

func (x StatusBadge) IsZero() bool {
	return x.Level == StatusLevelNone && x.Label == ""
}

// NewStatusBadge maps GitHub status and conclusion to a badge. No badge is
// returned for an empty status; that happens while a run is still loading.
func NewStatusBadge(status, conclusion string) StatusBadge {
	if status == "" {
		return StatusBadge{}
	}

	switch strings.ToLower(status) {
	case "queued":
		return StatusBadge{Level: StatusLevelPending, Label: "Queued"}
	case "in_progress":
		return StatusBadge{Level: StatusLevelRunning, Label: "In progress"}
	case "completed":
		switch strings.ToLower(conclusion) {
		case "skipped", "cancelled":
			return StatusBadge{Level: StatusLevelAborted, Label: "Aborted"}
		case "timed_out":
			return StatusBadge{Level: StatusLevelWarning, Label: "Timed out"}
		case "failure":
			return StatusBadge{Level: StatusLevelError, Label: "Error"}
		default:
			return StatusBadge{Level: StatusLevelOK, Label: "Completed"}
		}
	default:
		return StatusBadge{Level: StatusLevelPending, Label: "Pending"}
	}
}
