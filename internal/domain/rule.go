package domain

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// RuleID identifies a rule in the fixed catalog.
type RuleID string

const (
	RuleAmountThreshold RuleID = "R1"
	RuleNewDevice       RuleID = "R3"
	RuleVelocity        RuleID = "R4"
	RuleNewMerchant     RuleID = "R5"
	RuleRiskyBIN        RuleID = "R6"
)

// Catalog lists every rule the engine evaluates, in evaluation order.
var Catalog = []RuleID{
	RuleAmountThreshold,
	RuleNewDevice,
	RuleVelocity,
	RuleNewMerchant,
	RuleRiskyBIN,
}

// Defaults for rules stored without a threshold.
var (
	DefaultVelocityThreshold    = decimal.NewFromInt(5)
	DefaultNewMerchantThreshold = decimal.NewFromInt(5)
)

// Rule is a weighted condition loaded from the rule store.
type Rule struct {
	ID        RuleID           `json:"rule_id"`
	Name      string           `json:"name"`
	Weight    int              `json:"weight"`
	Threshold *decimal.Decimal `json:"threshold,omitempty"`
	List      []string         `json:"list,omitempty"`
}

// Validate checks the rule can be stored.
func (r *Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: rule_id is required", ErrValidation)
	}
	if r.Weight < 0 {
		return fmt.Errorf("%w: rule %s has negative weight", ErrValidation, r.ID)
	}
	return nil
}

// ThresholdOr returns the configured threshold, or def when unset.
func (r Rule) ThresholdOr(def decimal.Decimal) decimal.Decimal {
	if r.Threshold == nil {
		return def
	}
	return *r.Threshold
}

// Listed reports whether v is one of the rule's flagged values.
func (r Rule) Listed(v string) bool {
	return slices.Contains(r.List, v)
}

// RuleSet is the loaded rule catalog keyed by rule ID.
type RuleSet map[RuleID]Rule

// Lookup returns the rule for id, or ErrRuleMissing.
func (s RuleSet) Lookup(id RuleID) (Rule, error) {
	r, ok := s[id]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", ErrRuleMissing, id)
	}
	return r, nil
}
