package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"shownotes/internal/config"
	"shownotes/internal/jobs"
	"shownotes/internal/logging"
	"shownotes/internal/notifications"
	"shownotes/internal/pipeline"
)

// Runner executes one description pipeline run for a submitted URL.
type Runner interface {
	Run(ctx context.Context, videoURL string) (*pipeline.Result, error)
}

// Server accepts generation requests over HTTP and executes them in the
// background against the jobs store.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *jobs.Store
	runner   Runner
	notifier notifications.Service

	lock     *flock.Flock
	listener net.Listener
	httpSrv  *http.Server

	ctx        context.Context
	cancel     context.CancelFunc
	running    atomic.Bool
	workers    chan struct{}
	wg         sync.WaitGroup
	jobTimeout time.Duration
	started    time.Time
}

// New assembles a server from its collaborators. A nil notifier is resolved
// from the configuration, so callers only inject one in tests.
func New(cfg *config.Config, store *jobs.Store, runner Runner, notifier notifications.Service, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if store == nil {
		return nil, errors.New("jobs store is required")
	}
	if runner == nil {
		return nil, errors.New("pipeline runner is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if notifier == nil {
		notifier = notifications.NewService(cfg)
	}
	maxJobs := cfg.Server.MaxConcurrentJobs
	if maxJobs <= 0 {
		maxJobs = 1
	}
	return &Server{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "server"),
		store:      store,
		runner:     runner,
		notifier:   notifier,
		lock:       flock.New(cfg.LockFilePath()),
		workers:    make(chan struct{}, maxJobs),
		jobTimeout: time.Duration(cfg.Server.JobTimeoutMinutes) * time.Minute,
	}, nil
}

// Start acquires the instance lock, recovers jobs interrupted by a previous
// shutdown, and begins serving the API. It returns once the listener accepts
// connections; cancel ctx or call Stop to shut the server down.
func (s *Server) Start(ctx context.Context) error {
	if s.running.Load() {
		return errors.New("server already running")
	}

	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return errors.New("another shownotes server instance is already running")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)

	reset, err := s.store.ResetStuckRunning(s.ctx)
	if err != nil {
		s.releaseLock()
		return fmt.Errorf("recover interrupted jobs: %w", err)
	}
	if reset > 0 {
		s.logger.Warn("failed jobs left running by a previous instance", logging.Int64("jobs", reset))
	}

	listener, err := net.Listen("tcp", s.cfg.Server.Bind)
	if err != nil {
		s.releaseLock()
		return fmt.Errorf("listen on %s: %w", s.cfg.Server.Bind, err)
	}
	s.listener = listener
	s.httpSrv = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.started = time.Now()
	s.running.Store(true)

	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()
	go func() {
		<-s.ctx.Done()
		s.shutdownHTTP()
	}()

	s.resumePending()

	s.logger.Info("api server listening",
		logging.String("addr", listener.Addr().String()),
		logging.Int("max_concurrent_jobs", cap(s.workers)))
	return nil
}

// Stop cancels in-flight jobs, waits for their outcome bookkeeping, and
// releases the listener and instance lock.
func (s *Server) Stop() {
	if !s.running.Swap(false) {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.shutdownHTTP()
	s.releaseLock()
	s.logger.Info("api server stopped")
}

// Addr reports the bound listen address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// resumePending requeues jobs that were accepted but never started before the
// previous instance exited.
func (s *Server) resumePending() {
	pending, err := s.store.List(s.ctx, jobs.StatusPending)
	if err != nil {
		s.logger.Warn("list pending jobs", logging.Error(err))
		return
	}
	for _, job := range pending {
		s.logger.Info("resuming pending job", logging.String("job_id", job.ID), logging.String("url", job.URL))
		s.startJob(job)
	}
}

func (s *Server) shutdownHTTP() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("api server shutdown", logging.Error(err))
	}
}

func (s *Server) releaseLock() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("release server lock", logging.Error(err))
	}
}
