// internal/server/handlers.go
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	stderrors "sow-engine/internal/common/errors"
	"sow-engine/internal/models"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Warn("Failed to encode response", nil)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) readTakeoff(w http.ResponseWriter, r *http.Request) (models.Takeoff, []byte, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return nil, nil, false
	}
	data, err := models.ParseTakeoff(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return nil, nil, false
	}
	return data, body, true
}

// handleSubmitTakeoff runs the full workflow. Validation failures still
// return 200: the result carries the validation outcome and the client
// renders it. Only transport-level problems use error status codes.
func (s *Server) handleSubmitTakeoff(w http.ResponseWriter, r *http.Request) {
	data, _, ok := s.readTakeoff(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.Generation.GetTimeout())
	defer cancel()

	result := s.orchestrator.ProcessTakeoff(ctx, data)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidateOnly(w http.ResponseWriter, r *http.Request) {
	_, body, ok := s.readTakeoff(w, r)
	if !ok {
		return
	}

	_, result, err := s.validator.ValidatePayload(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")

	gen, err := s.store.GetGenerationByWorkflowID(r.Context(), workflowID)
	if err != nil {
		if stdErr, ok := err.(*stderrors.StandardError); ok && stdErr.Code == stderrors.ErrCodeGenerationNotFound {
			s.writeError(w, http.StatusNotFound, "workflow not found")
			return
		}
		s.writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, gen)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r)

	projects, err := s.store.ListProjects(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"projects": projects, "count": len(projects)})
}

func (s *Server) handleListGenerations(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r)

	generations, err := s.store.ListGenerations(r.Context(), limit)
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"generations": generations, "count": len(generations)})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	workType := r.URL.Query().Get("work_type")
	membraneType := r.URL.Query().Get("membrane_type")

	list := s.selector.List(workType, membraneType)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"templates": list, "count": len(list)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"reason": "database unreachable",
		})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func queryLimit(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
