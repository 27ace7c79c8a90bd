package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iho/fraudmini/internal/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCmdPostsStdin(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/score" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"transaction_id":"t1","decision":"allow"}`))
	}))
	defer server.Close()

	payload := `{"transaction_id":"t1","user_id":"u1","ts":"2025-10-01T12:00:00Z"}`
	out, err := runCLI(t, payload, "--url", server.URL, "score")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if gotBody != payload {
		t.Fatalf("expected stdin to be posted, got %q", gotBody)
	}
	if !strings.Contains(out, `"decision": "allow"`) {
		t.Fatalf("expected indented response, got %q", out)
	}
}

func TestDecisionGetCmdReportsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/v1/decisions/tx%2F1" {
			t.Errorf("unexpected path %s", r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	out, err := runCLI(t, "", "--url", server.URL, "decision", "get", "tx/1")
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	if !strings.Contains(out, "not found") {
		t.Fatalf("expected body to be printed, got %q", out)
	}
}

func TestNotificationEnvelope(t *testing.T) {
	raw, err := notificationEnvelope("raw", []string{"incoming/day 1.csv"})
	if err != nil {
		t.Fatalf("envelope failed: %v", err)
	}

	var decoded struct {
		Records []notificationRecord `json:"Records"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(decoded.Records) != 1 {
		t.Fatalf("expected one record, got %d", len(decoded.Records))
	}
	rec := decoded.Records[0]
	if rec.S3.Bucket.Name != "raw" || rec.S3.Object.Key != "incoming%2Fday+1.csv" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestIngestNotifyRequiresBucket(t *testing.T) {
	if _, err := runCLI(t, "", "ingest", "notify", "a.csv"); err == nil {
		t.Fatalf("expected missing --bucket to fail")
	}
}

type recordingUpserter struct {
	rules []domain.Rule
	err   error
}

func (r *recordingUpserter) Upsert(ctx context.Context, rules []domain.Rule) error {
	r.rules = rules
	return r.err
}

func (r *recordingUpserter) Count(ctx context.Context) (int64, error) {
	return int64(len(r.rules)), nil
}

func TestRulesSeedCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	content := `[{"rule_id":"R1","name":"amount_above_threshold","weight":50,"threshold":"100"},{"rule_id":"R6","name":"risky_bin","weight":40,"list":["400000"]}]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	t.Run("upserts parsed rules", func(t *testing.T) {
		store := &recordingUpserter{}
		closed := false
		cmd := rulesSeedCmd(func(context.Context) (RuleUpserter, func(), error) {
			return store, func() { closed = true }, nil
		})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
		if len(store.rules) != 2 || store.rules[0].Threshold == nil || store.rules[0].Threshold.String() != "100" {
			t.Fatalf("unexpected rules %+v", store.rules)
		}
		if !closed {
			t.Fatalf("expected store to be closed")
		}
		if strings.TrimSpace(out.String()) != "Seeded 2 rules (2 in store)" {
			t.Fatalf("unexpected output %q", out.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		cmd := rulesSeedCmd(func(context.Context) (RuleUpserter, func(), error) {
			return &recordingUpserter{err: errors.New("db down")}, func() {}, nil
		})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{path})

		if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "db down") {
			t.Fatalf("expected store error, got %v", err)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(bad, []byte(`{`), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		cmd := rulesSeedCmd(func(context.Context) (RuleUpserter, func(), error) {
			t.Fatalf("store must not be opened for an invalid file")
			return nil, nil, nil
		})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{bad})

		if err := cmd.Execute(); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}

func TestPrintJSONFallsBackToRaw(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, []byte("rate limit exceeded")); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if buf.String() != "rate limit exceeded\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
