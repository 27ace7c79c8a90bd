package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fraudmini/internal/adapter/http/dto"
	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase"
)

// DecisionService scores transactions and looks up stored decisions.
type DecisionService interface {
	Score(ctx context.Context, payload []byte) (*usecase.ScoreResult, error)
	GetDecision(ctx context.Context, transactionID string) (*domain.Decision, error)
}

// DecisionHandler handles scoring HTTP requests.
type DecisionHandler struct {
	decisionUC DecisionService
}

// NewDecisionHandler creates a new DecisionHandler.
func NewDecisionHandler(decisionUC DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionUC: decisionUC}
}

// Score evaluates the transaction in the request body.
func (h *DecisionHandler) Score(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.decisionUC.Score(r.Context(), body)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, errorTitle(status, err), "")
		return
	}

	writeJSON(w, http.StatusOK, dto.ScoreFromResult(result))
}

// Get retrieves the decision stored for a transaction.
func (h *DecisionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil || id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return
	}

	decision, err := h.decisionUC.GetDecision(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		if status == http.StatusNotFound {
			writeError(w, status, "not found", "")
			return
		}
		writeError(w, status, "failed to get decision", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DecisionFromDomain(decision))
}

// errorTitle exposes validation messages to callers and hides internals.
func errorTitle(status int, err error) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusServiceUnavailable:
		return "rules unavailable"
	default:
		return "internal error"
	}
}
