package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/infrastructure/postgres/generated"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "650.10", "-12.5", "1000000", "0.0001", "12.123456789"} {
		d := decimal.RequireFromString(s)
		got := numericToDecimal(decimalToNumeric(d))
		if !got.Equal(d) {
			t.Errorf("%s: got %s", s, got)
		}
	}
}

func TestOptionalDecimal(t *testing.T) {
	if n := optionalDecimalToNumeric(nil); n.Valid {
		t.Fatalf("expected NULL numeric for nil threshold")
	}
	if d := numericToOptionalDecimal(pgtype.Numeric{}); d != nil {
		t.Fatalf("expected nil threshold for NULL numeric, got %s", d)
	}

	v := decimal.NewFromInt(100)
	d := numericToOptionalDecimal(optionalDecimalToNumeric(&v))
	if d == nil || !d.Equal(v) {
		t.Fatalf("expected 100, got %v", d)
	}
}

func TestRowToDecision(t *testing.T) {
	created := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	d := rowToDecision(generated.Decision{
		TransactionID: "t1",
		Score:         75,
		Decision:      "block",
		RuleVersion:   "v1",
		RulesFired:    []string{"R1", "R5"},
		CreatedAt:     timeToPgTimestamptz(created),
	})

	if d.Tier != domain.TierBlock || d.Score != 75 {
		t.Fatalf("unexpected decision %+v", d)
	}
	if d.Reasons == nil {
		t.Fatalf("reasons must not be nil")
	}
	if len(d.RulesFired) != 2 || d.RulesFired[1] != domain.RuleNewMerchant {
		t.Fatalf("unexpected rules fired %v", d.RulesFired)
	}
	if !d.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at %s", d.CreatedAt)
	}
}
