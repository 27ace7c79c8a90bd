package handler

import (
	"context"
	"net/http"

	"github.com/iho/fraudmini/internal/adapter/http/dto"
	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase"
)

// IngestService processes uploaded-file notifications.
type IngestService interface {
	HandleNotifications(ctx context.Context, refs []domain.FileRef) []domain.FileOutcome
}

// IngestHandler handles notification intake.
type IngestHandler struct {
	ingestUC IngestService
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(ingestUC IngestService) *IngestHandler {
	return &IngestHandler{ingestUC: ingestUC}
}

// Notify processes every file referenced by the notification envelope.
func (h *IngestHandler) Notify(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	refs, err := usecase.ParseNotification(body)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error(), "")
		return
	}

	outcomes := h.ingestUC.HandleNotifications(r.Context(), refs)

	writeJSON(w, http.StatusOK, dto.OutcomesFromDomain(outcomes))
}
