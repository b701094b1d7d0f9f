package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shownotes/internal/jobs"
	"shownotes/internal/logging"
)

// startJob schedules a stored job on the worker pool. Execution waits for a
// free slot so at most max_concurrent_jobs pipelines run at once.
func (s *Server) startJob(job *jobs.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case s.workers <- struct{}{}:
		case <-s.ctx.Done():
			return
		}
		defer func() { <-s.workers }()
		s.runJob(job)
	}()
}

func (s *Server) runJob(job *jobs.Job) {
	logger := s.logger.With(logging.String("job_id", job.ID), logging.String("url", job.URL))

	runCtx := s.ctx
	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, s.jobTimeout)
		defer cancel()
	}

	if err := s.store.MarkRunning(runCtx, job.ID); err != nil {
		logger.Error("mark job running", logging.Error(err))
		return
	}

	start := time.Now()
	result, err := s.runner.Run(runCtx, job.URL)
	elapsed := time.Since(start)

	// Outcome bookkeeping must survive shutdown cancellation.
	storeCtx, cancelStore := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStore()

	if err != nil {
		message := err.Error()
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			message = fmt.Sprintf("job timed out after %s", s.jobTimeout)
		case errors.Is(err, context.Canceled):
			message = "interrupted by server shutdown"
		}
		logger.Error("job failed", logging.Error(err), logging.Duration("elapsed", elapsed))
		if dbErr := s.store.Fail(storeCtx, job.ID, message); dbErr != nil {
			logger.Error("persist job failure", logging.Error(dbErr))
		}
		if notifyErr := s.notifier.NotifyJobFailed(storeCtx, job.URL, err); notifyErr != nil {
			logger.Warn("send failure notification", logging.Error(notifyErr))
		}
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		logger.Error("encode job result", logging.Error(err))
		if dbErr := s.store.Fail(storeCtx, job.ID, fmt.Sprintf("encode result: %v", err)); dbErr != nil {
			logger.Error("persist job failure", logging.Error(dbErr))
		}
		return
	}
	if dbErr := s.store.Complete(storeCtx, job.ID, string(payload)); dbErr != nil {
		logger.Error("persist job result", logging.Error(dbErr))
		return
	}
	logger.Info("job completed",
		logging.Duration("elapsed", elapsed),
		logging.Int("participants", len(result.Participants)))
	if notifyErr := s.notifier.NotifyJobCompleted(storeCtx, result.Title, len(result.Participants), elapsed); notifyErr != nil {
		logger.Warn("send completion notification", logging.Error(notifyErr))
	}
}
