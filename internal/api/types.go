package api

import "encoding/json"

// GenerateRequest submits a video URL for description generation.
type GenerateRequest struct {
	URL string `json:"url"`
}

// GenerateResponse acknowledges an accepted job.
type GenerateResponse struct {
	JobID string `json:"job_id"`
}

// JobResponse describes a job in a transport-friendly format. Result carries
// the raw pipeline output once the job has completed.
type JobResponse struct {
	JobID  string          `json:"job_id"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DependencyStatus captures availability of an external dependency.
type DependencyStatus struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// StatusResponse summarizes server runtime state.
type StatusResponse struct {
	Running      bool               `json:"running"`
	PID          int                `json:"pid"`
	Uptime       string             `json:"uptime,omitempty"`
	DatabasePath string             `json:"database_path"`
	LockPath     string             `json:"lock_path"`
	Jobs         map[string]int     `json:"jobs"`
	Dependencies []DependencyStatus `json:"dependencies"`
}
