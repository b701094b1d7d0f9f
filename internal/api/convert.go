package api

import (
	"encoding/json"

	"shownotes/internal/deps"
	"shownotes/internal/jobs"
)

// JobResponseFrom converts a stored job into its wire representation. The
// persisted result payload is only exposed once the job has completed.
func JobResponseFrom(job *jobs.Job) JobResponse {
	resp := JobResponse{
		JobID:  job.ID,
		Status: string(job.Status),
		Error:  job.Error,
	}
	if job.Status == jobs.StatusCompleted && job.ResultJSON != "" {
		resp.Result = json.RawMessage(job.ResultJSON)
	}
	return resp
}

// JobCountsFrom flattens store counts into plain string keys.
func JobCountsFrom(counts map[jobs.Status]int) map[string]int {
	out := make(map[string]int, len(counts))
	for status, count := range counts {
		out[string(status)] = count
	}
	return out
}

// DependencyStatusesFrom mirrors dependency checks into wire DTOs.
func DependencyStatusesFrom(statuses []deps.Status) []DependencyStatus {
	out := make([]DependencyStatus, len(statuses))
	for i, status := range statuses {
		out[i] = DependencyStatus{
			Name:        status.Name,
			Command:     status.Command,
			Description: status.Description,
			Optional:    status.Optional,
			Available:   status.Available,
			Detail:      status.Detail,
		}
	}
	return out
}
