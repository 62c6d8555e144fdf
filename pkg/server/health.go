package server

import (
	"net/http"
	"time"

	"github.com/nithilesh-m/GenAI-Insulin-Drug/pkg/serializers"
)

// HealthResponse is the body of the health endpoint. ModelLoaded reflects
// whether the checkpoint was loaded at startup.
type HealthResponse struct {
	Status      string    `json:"status"`
	ModelLoaded bool      `json:"model_loaded"`
	Timestamp   time.Time `json:"timestamp"`
	Reason      string    `json:"reason,omitempty"`
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	loaded := false
	if s.modelLoaded != nil {
		loaded = s.modelLoaded()
	}

	serializers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		ModelLoaded: loaded,
		Timestamp:   time.Now(),
	})
}

// handleReady handles GET /ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.isReady() {
		serializers.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not_ready",
			Timestamp: time.Now(),
			Reason:    "service is initializing",
		})
		return
	}

	serializers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:      "ready",
		ModelLoaded: s.modelLoaded != nil && s.modelLoaded(),
		Timestamp:   time.Now(),
	})
}
