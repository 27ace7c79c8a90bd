package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/usecase/mocks"
)

func thresholdOf(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// quietCatalog returns a full catalog in which no rule fires for
// quietTransaction once knownHistory is seeded.
func quietCatalog() domain.RuleSet {
	return domain.RuleSet{
		domain.RuleAmountThreshold: {ID: domain.RuleAmountThreshold, Name: "amount_above_threshold", Weight: 50, Threshold: thresholdOf(1_000_000)},
		domain.RuleNewDevice:       {ID: domain.RuleNewDevice, Name: "new_device", Weight: 30},
		domain.RuleVelocity:        {ID: domain.RuleVelocity, Name: "velocity_attempts", Weight: 20},
		domain.RuleNewMerchant:     {ID: domain.RuleNewMerchant, Name: "new_merchant", Weight: 25, Threshold: thresholdOf(500)},
		domain.RuleRiskyBIN:        {ID: domain.RuleRiskyBIN, Name: "risky_bin", Weight: 40, List: []string{"999999"}},
	}
}

func withRule(rules domain.RuleSet, rule domain.Rule) domain.RuleSet {
	rules[rule.ID] = rule
	return rules
}

func quietTransaction(id string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: id,
		UserID:        "u1",
		Amount:        decimal.NewFromInt(10),
		Currency:      "GBP",
		MerchantID:    "m-known",
		DeviceID:      "d-known",
		CardBIN:       "411111",
		Ts:            time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

// knownHistory returns a repository holding one earlier transaction for u1
// on device d-known at merchant m-known.
func knownHistory(t *testing.T) *mocks.FakeTransactionRepository {
	t.Helper()

	repo := mocks.NewFakeTransactionRepository()
	prior := quietTransaction("prior")
	prior.Ts = prior.Ts.Add(-time.Hour)
	if err := repo.Put(context.Background(), prior); err != nil {
		t.Fatalf("seed history: %v", err)
	}
	return repo
}
