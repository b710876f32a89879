package http

import (
	"net/http"

	"event-handler/internal/batchers"
)

type HealthResponse struct {
	Status     string `json:"status"`
	BufferSize int    `json:"buffer_size"`
	BatchSize  int    `json:"batch_size"`
}

type healthHandler struct {
	flushEngine batchers.FlushEngine
}

func NewHealthHandler(flushEngine batchers.FlushEngine) AppHttpHandler {
	return &healthHandler{
		flushEngine: flushEngine,
	}
}

// Handle processes GET /health requests. The buffer is read, never drained.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		BufferSize: h.flushEngine.BufferSize(),
		BatchSize:  h.flushEngine.BatchSize(),
	})
	return nil
}
