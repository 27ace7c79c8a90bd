package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	postgresRepo "github.com/iho/fraudmini/internal/adapter/repository/postgres"
	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/infrastructure/postgres"
	"github.com/iho/fraudmini/internal/infrastructure/postgres/generated"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool    *pgxpool.Pool
	Queries *generated.Queries
	t       *testing.T
}

// NewTestDB connects to DATABASE_URL and applies migrations. The test is
// skipped when DATABASE_URL is unset.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	migrationsPath := "migrations"
	for _, candidate := range []string{"migrations", "../migrations", "../../migrations"} {
		if _, err := os.Stat(candidate); err == nil {
			migrationsPath = candidate
			break
		}
	}

	if err := postgres.RunMigrations(dbURL, migrationsPath, zerolog.Nop()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{
		Pool:    pool,
		Queries: generated.New(pool),
		t:       t,
	}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE decisions CASCADE;
		TRUNCATE TABLE transactions CASCADE;
		TRUNCATE TABLE rules CASCADE;
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// SeedRules writes rules into the rule table.
func (db *TestDB) SeedRules(ctx context.Context, rules ...domain.Rule) {
	db.t.Helper()

	repo := postgresRepo.NewRuleRepository(db.Pool, nil)
	if err := repo.Upsert(ctx, rules); err != nil {
		db.t.Fatalf("failed to seed rules: %v", err)
	}
}

// SeedTransaction stores a prior transaction for the user.
func (db *TestDB) SeedTransaction(ctx context.Context, userID, deviceID, merchantID string, ts time.Time) *domain.Transaction {
	db.t.Helper()

	txn := &domain.Transaction{
		TransactionID: GenerateID(),
		UserID:        userID,
		Amount:        decimal.NewFromInt(10),
		MerchantID:    merchantID,
		DeviceID:      deviceID,
		Ts:            ts.UTC(),
		CreatedAt:     time.Now().UTC(),
	}

	repo := postgresRepo.NewTransactionRepository(db.Pool, nil)
	if err := repo.Put(ctx, txn); err != nil {
		db.t.Fatalf("failed to seed transaction: %v", err)
	}

	return txn
}

// Threshold returns a pointer to a decimal parsed from s.
func Threshold(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ExampleCatalog is a full catalog where only R1 and R5 can fire for a
// transaction from a known device with few attempts and a clean BIN.
func ExampleCatalog() []domain.Rule {
	return []domain.Rule{
		{ID: domain.RuleAmountThreshold, Name: "amount_above_threshold", Weight: 50, Threshold: Threshold("100")},
		{ID: domain.RuleNewDevice, Name: "new_device", Weight: 30},
		{ID: domain.RuleVelocity, Name: "velocity_attempts", Weight: 20, Threshold: Threshold("5")},
		{ID: domain.RuleNewMerchant, Name: "new_merchant", Weight: 25, Threshold: Threshold("500")},
		{ID: domain.RuleRiskyBIN, Name: "risky_bin", Weight: 40, List: []string{"999999"}},
	}
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}
