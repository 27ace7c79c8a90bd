package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iho/fraudmini/internal/adapter/http/dto"
	"github.com/iho/fraudmini/internal/domain"
)

type ingestServiceStub struct {
	refs []domain.FileRef
}

func (s *ingestServiceStub) HandleNotifications(ctx context.Context, refs []domain.FileRef) []domain.FileOutcome {
	s.refs = refs
	outcomes := make([]domain.FileOutcome, len(refs))
	for i, ref := range refs {
		outcomes[i] = domain.FileOutcome{File: ref, Status: domain.FileProcessed, ReceiptKey: ref.ReceiptKey(domain.NamespaceProcessed)}
	}
	return outcomes
}

func TestIngestHandler_Notify(t *testing.T) {
	stub := &ingestServiceStub{}
	handler := NewIngestHandler(stub)

	body := `{"Records":[{"s3":{"bucket":{"name":"raw"},"object":{"key":"incoming/day+1.csv"}}}]}`
	rec := httptest.NewRecorder()
	handler.Notify(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ingest/notifications", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(stub.refs) != 1 || stub.refs[0].Key != "incoming/day 1.csv" {
		t.Fatalf("expected decoded key, got %+v", stub.refs)
	}

	var resp dto.NotificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Files) != 1 || resp.Files[0].ReceiptKey != "processed/day 1.receipt.json" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestIngestHandler_NotifyRejectsMalformedEnvelope(t *testing.T) {
	stub := &ingestServiceStub{}
	handler := NewIngestHandler(stub)

	rec := httptest.NewRecorder()
	handler.Notify(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ingest/notifications", strings.NewReader(`{not json`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if stub.refs != nil {
		t.Fatalf("expected service not to be called")
	}
}
