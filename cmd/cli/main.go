package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	postgresRepo "github.com/iho/fraudmini/internal/adapter/repository/postgres"
	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/infrastructure/config"
	"github.com/iho/fraudmini/internal/infrastructure/logger"
	"github.com/iho/fraudmini/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fraudmini-cli",
		Short:         "fraudmini CLI tool",
		Long:          `A command line interface for interacting with the fraudmini API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the fraudmini API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	decisionCmd := &cobra.Command{
		Use:   "decision",
		Short: "Decision operations",
	}
	decisionCmd.AddCommand(decisionGetCmd())

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingestion operations",
	}
	ingestCmd.AddCommand(ingestNotifyCmd())

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Rule catalog administration",
	}
	rulesCmd.AddCommand(rulesSeedCmd(openRuleStore))

	rootCmd.AddCommand(scoreCmd(), decisionCmd, ingestCmd, healthCmd(), rulesCmd)

	return rootCmd
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [file]",
		Short: "Score a transaction read from a JSON file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return doRequest(cmd, http.MethodPost, "/api/v1/score", payload)
		},
	}
}

func decisionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <transaction_id>",
		Short: "Show the stored decision for a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(cmd, http.MethodGet, "/api/v1/decisions/"+url.PathEscape(args[0]), nil)
		},
	}
}

func ingestNotifyCmd() *cobra.Command {
	var bucket string

	cmd := &cobra.Command{
		Use:   "notify <key>...",
		Short: "Send an object-created notification for uploaded files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := notificationEnvelope(bucket, args)
			if err != nil {
				return err
			}
			return doRequest(cmd, http.MethodPost, "/api/v1/ingest/notifications", payload)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket holding the uploaded files")
	_ = cmd.MarkFlagRequired("bucket")

	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(cmd, http.MethodGet, "/ready", nil)
		},
	}
}

// RuleUpserter writes a rule catalog.
type RuleUpserter interface {
	Upsert(ctx context.Context, rules []domain.Rule) error
	Count(ctx context.Context) (int64, error)
}

type openStoreFunc func(ctx context.Context) (RuleUpserter, func(), error)

func rulesSeedCmd(open openStoreFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <rules.json>",
		Short: "Write a rule catalog file into the rule store",
		Long:  `Reads a JSON array of rules and upserts them in one transaction. Uses DATABASE_URL.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read rules file: %w", err)
			}

			var rules []domain.Rule
			if err := json.Unmarshal(raw, &rules); err != nil {
				return fmt.Errorf("parse rules file: %w", err)
			}
			if len(rules) == 0 {
				return fmt.Errorf("rules file %s is empty", args[0])
			}

			store, closeStore, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.Upsert(cmd.Context(), rules); err != nil {
				return fmt.Errorf("seed rules: %w", err)
			}

			total, err := store.Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count rules: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d rules (%d in store)\n", len(rules), total)
			return nil
		},
	}
}

func openRuleStore(ctx context.Context) (RuleUpserter, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, 2, 0)
	if err != nil {
		return nil, nil, err
	}

	return postgresRepo.NewRuleRepository(pool, postgresRepo.NewRetrier(log)), pool.Close, nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

type notificationRecord struct {
	S3 struct {
		Bucket struct {
			Name string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key string `json:"key"`
		} `json:"object"`
	} `json:"s3"`
}

// notificationEnvelope builds an object-created event. Keys are URL-encoded
// the way the object store encodes them.
func notificationEnvelope(bucket string, keys []string) ([]byte, error) {
	records := make([]notificationRecord, len(keys))
	for i, key := range keys {
		records[i].S3.Bucket.Name = bucket
		records[i].S3.Object.Key = url.QueryEscape(key)
	}
	return json.Marshal(map[string]any{"Records": records})
}

func doRequest(cmd *cobra.Command, method, path string, payload []byte) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(baseURL, "/")+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if err := printJSON(cmd.OutOrStdout(), respBody); err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status: %d)", resp.StatusCode)
	}
	return nil
}

func printJSON(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, werr := fmt.Fprintln(w, string(raw))
		return werr
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}
