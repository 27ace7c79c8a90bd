package integration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/fraudmini/internal/adapter/http"
	"github.com/iho/fraudmini/internal/adapter/http/handler"
	"github.com/iho/fraudmini/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/fraudmini/internal/adapter/repository/redis"
	"github.com/iho/fraudmini/internal/usecase"
	"github.com/iho/fraudmini/internal/usecase/mocks"
	"github.com/iho/fraudmini/tests/testutil"
)

const (
	archiveBucket = "archive"
	refinedBucket = "refined"
	rowStream     = "fraud:rows"
)

type harness struct {
	db        *testutil.TestDB
	redis     *goredis.Client
	objects   *mocks.FakeObjectStore
	alerts    *mocks.FakePublisher
	decisions *usecase.DecisionUseCase
	ingest    *usecase.IngestUseCase
	router    http.Handler
}

func newHarness(t *testing.T, db *testutil.TestDB) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zerolog.Nop()
	objects := mocks.NewFakeObjectStore()
	alerts := mocks.NewFakePublisher()

	transactionRepo := postgres.NewTransactionRepository(db.Pool, nil)
	decisionRepo := redisrepo.NewDecisionCache(postgres.NewDecisionRepository(db.Pool, nil), client, time.Hour, logger)

	decisionUC := usecase.NewDecisionUseCase(usecase.DecisionConfig{
		Transactions:  transactionRepo,
		Decisions:     decisionRepo,
		Rules:         usecase.NewRuleRepository(postgres.NewRuleRepository(db.Pool, nil), logger),
		Engine:        usecase.NewDecisionEngine(transactionRepo),
		Archive:       objects,
		ArchiveBucket: archiveBucket,
		Alerts:        alerts,
		IDGen:         postgres.NewULIDGenerator(),
		Logger:        logger,
	})

	ingestUC := usecase.NewIngestUseCase(usecase.IngestConfig{
		Objects:       objects,
		RefinedBucket: refinedBucket,
		Queue:         redisrepo.NewStreamQueue(client, rowStream, 0),
		Logger:        logger,
	})

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		DecisionHandler: handler.NewDecisionHandler(decisionUC),
		IngestHandler:   handler.NewIngestHandler(ingestUC),
		HealthHandler:   handler.NewHealthHandler("fraudmini", db.Pool, nil),
		MetricsHandler:  http.NotFoundHandler(),
		Logger:          logger,
	})

	return &harness{
		db:        db,
		redis:     client,
		objects:   objects,
		alerts:    alerts,
		decisions: decisionUC,
		ingest:    ingestUC,
		router:    router,
	}
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}
