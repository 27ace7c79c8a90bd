package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRuleSet_Lookup(t *testing.T) {
	set := RuleSet{RuleAmountThreshold: {ID: RuleAmountThreshold, Weight: 50}}

	r, err := set.Lookup(RuleAmountThreshold)
	if err != nil {
		t.Fatalf("expected rule, got %v", err)
	}
	if r.Weight != 50 {
		t.Fatalf("expected weight 50, got %d", r.Weight)
	}

	_, err = set.Lookup(RuleRiskyBIN)
	if !errors.Is(err, ErrRuleMissing) || !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Fatalf("missing rule must not be a validation error")
	}
}

func TestRule_ThresholdOr(t *testing.T) {
	thr := decimal.NewFromInt(100)
	withThreshold := Rule{Threshold: &thr}
	if !withThreshold.ThresholdOr(decimal.NewFromInt(5)).Equal(thr) {
		t.Fatalf("expected configured threshold")
	}

	if !(Rule{}).ThresholdOr(DefaultVelocityThreshold).Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected default threshold")
	}
}

func TestRule_Validate(t *testing.T) {
	if err := (&Rule{ID: "R1", Weight: 0}).Validate(); err != nil {
		t.Fatalf("expected zero weight to be valid, got %v", err)
	}
	if err := (&Rule{ID: "R1", Weight: -1}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := (&Rule{Weight: 1}).Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Tier
	}{
		{0, TierAllow},
		{29, TierAllow},
		{30, TierChallenge},
		{69, TierChallenge},
		{70, TierBlock},
		{150, TierBlock},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestHistory_ExcludesCurrentTransaction(t *testing.T) {
	h := History{
		{TransactionID: "t2", DeviceID: "d-current", MerchantID: "m-current"},
		{TransactionID: "t1", DeviceID: "d-old", MerchantID: "m-old"},
	}

	devices := h.Devices("t2")
	if _, ok := devices["d-current"]; ok {
		t.Fatalf("current transaction should be excluded")
	}
	if _, ok := devices["d-old"]; !ok {
		t.Fatalf("expected d-old in device set")
	}

	merchants := h.Merchants("")
	if len(merchants) != 2 {
		t.Fatalf("expected 2 merchants, got %d", len(merchants))
	}
}

func TestHistory_Excluding(t *testing.T) {
	h := History{
		{TransactionID: "t3"},
		{TransactionID: "t2"},
		{TransactionID: "t1"},
	}

	got := h.Excluding("t3", 2)
	if len(got) != 2 || got[0].TransactionID != "t2" || got[1].TransactionID != "t1" {
		t.Fatalf("unexpected window %+v", got)
	}

	got = h.Excluding("missing", 2)
	if len(got) != 2 || got[1].TransactionID != "t2" {
		t.Fatalf("expected cap at 2, got %d entries", len(got))
	}
}
