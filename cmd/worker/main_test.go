package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iho/fraudmini/internal/adapter/http/handler"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func TestConsumerNameIsUniquePerProcess(t *testing.T) {
	name := consumerName(fixedID("01J9ZK"))
	if !strings.HasSuffix(name, "-01J9ZK") {
		t.Fatalf("expected generated suffix, got %q", name)
	}
	if strings.HasPrefix(name, "-") {
		t.Fatalf("expected host prefix, got %q", name)
	}
}

func TestMetricsRouter(t *testing.T) {
	redisDown := handler.PingerFunc(func(context.Context) error { return errors.New("connection refused") })
	router := metricsRouter(handler.NewHealthHandler(serviceName, nil, redisDown))

	tests := []struct {
		name     string
		path     string
		status   int
		contains string
	}{
		{name: "liveness", path: "/health", status: http.StatusOK, contains: `"service":"fraudmini-worker"`},
		{name: "readiness reports redis", path: "/ready", status: http.StatusServiceUnavailable, contains: "redis unhealthy"},
		{name: "metrics", path: "/metrics", status: http.StatusOK},
		{name: "unknown path", path: "/nope", status: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			if tc.contains != "" && !strings.Contains(rec.Body.String(), tc.contains) {
				t.Fatalf("expected body to contain %q, got %s", tc.contains, rec.Body.String())
			}
		})
	}
}
