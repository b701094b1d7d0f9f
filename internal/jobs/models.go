package jobs

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle of a job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// RestartFailureReason is the error message set on running jobs found at startup.
const RestartFailureReason = "interrupted by server restart"

var allStatuses = []Status{
	StatusPending,
	StatusRunning,
	StatusCompleted,
	StatusFailed,
}

// Valid reports whether the status is one of the known lifecycle values.
func (s Status) Valid() bool {
	for _, status := range allStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Terminal reports whether a job in this status will never change again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job is one submitted description request.
type Job struct {
	ID         string
	URL        string
	Status     Status
	Error      string
	ResultJSON string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// newJobID returns a short identifier for API responses and log lines.
func newJobID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
