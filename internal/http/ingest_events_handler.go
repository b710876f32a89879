package http

import (
	"net/http"

	"event-handler/internal/ingestors"
)

// StatusResponse is the body of a successful webhook delivery.
type StatusResponse struct {
	Status string `json:"status"`
}

type ingestEventsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /webhook/events requests.
func (h *ingestEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	_, err := h.ingestionService.IngestEvents(r.Context(), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "success"})
	return nil
}
