package server

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"shownotes/internal/api"
	"shownotes/internal/deps"
	"shownotes/internal/logging"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/jobs/", s.handleJob)
	mux.HandleFunc("/api/status", s.handleStatus)
	return mux
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req.URL = ""
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		s.writeError(w, http.StatusBadRequest, "URL é obrigatória")
		return
	}
	job, err := s.store.Create(r.Context(), url)
	if err != nil {
		s.logger.Error("create job", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to create job")
		return
	}
	s.startJob(job)
	s.logger.Info("job accepted", logging.String("job_id", job.ID), logging.String("url", url))
	s.writeJSON(w, http.StatusAccepted, api.GenerateResponse{JobID: job.ID})
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/jobs/")
	if id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "Job não encontrado")
		return
	}
	job, err := s.store.GetByID(r.Context(), id)
	if err != nil {
		s.logger.Error("load job", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	if job == nil {
		s.writeError(w, http.StatusNotFound, "Job não encontrado")
		return
	}
	s.writeJSON(w, http.StatusOK, api.JobResponseFrom(job))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	counts, err := s.store.Counts(r.Context())
	if err != nil {
		s.logger.Error("count jobs", logging.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to inspect jobs")
		return
	}
	resp := api.StatusResponse{
		Running:      s.running.Load(),
		PID:          os.Getpid(),
		DatabasePath: s.store.Path(),
		LockPath:     s.cfg.LockFilePath(),
		Jobs:         api.JobCountsFrom(counts),
		Dependencies: api.DependencyStatusesFrom(deps.Check(deps.Defaults(s.cfg))),
	}
	if !s.started.IsZero() {
		resp.Uptime = time.Since(s.started).Round(time.Second).String()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.ErrorResponse{Error: message})
}
