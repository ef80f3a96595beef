// internal/server/assembly.go
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"sow-engine/internal/assembly"
)

// Assembly endpoints back the interactive assembly builder: derive layers
// from material picks, report compatible templates, and check an edited
// layer stack before it is committed to an inspection.

func (s *Server) handleDeriveLayers(w http.ResponseWriter, r *http.Request) {
	var req assembly.Request
	if !s.readInto(w, r, &req) {
		return
	}

	layers := assembly.DeriveLayers(req)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"layers":        layers,
		"compatibility": assembly.CompatibleTemplates(layers),
	})
}

func (s *Server) handleAssemblyCompatibility(w http.ResponseWriter, r *http.Request) {
	var layers []assembly.RoofLayer
	if !s.readInto(w, r, &layers) {
		return
	}
	s.writeJSON(w, http.StatusOK, assembly.CompatibleTemplates(layers))
}

func (s *Server) handleAssemblyValidate(w http.ResponseWriter, r *http.Request) {
	var layers []assembly.RoofLayer
	if !s.readInto(w, r, &layers) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"validation":  assembly.Validate(layers),
		"suggestions": assembly.Suggestions(layers),
	})
}

func (s *Server) readInto(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return false
	}
	return true
}
