package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/fraudmini/internal/domain"
)

// Evaluation is the engine's verdict for one transaction.
type Evaluation struct {
	Score   int
	Tier    domain.Tier
	Reasons []string
	Fired   []domain.RuleID
}

func (e *Evaluation) fire(rule domain.Rule, reason string) {
	e.Score += rule.Weight
	e.Reasons = append(e.Reasons, reason)
	e.Fired = append(e.Fired, rule.ID)
}

// DecisionEngine scores transactions against the rule catalog. Given the
// same transaction, rules, and history it always returns the same result.
type DecisionEngine struct {
	history      HistoryLookup
	historyLimit int
}

// NewDecisionEngine creates a new DecisionEngine.
func NewDecisionEngine(history HistoryLookup) *DecisionEngine {
	return &DecisionEngine{
		history:      history,
		historyLimit: HistoryLimit,
	}
}

// Decide evaluates R1, R3, R4, R5 and R6 in that order. Reasons and fired
// rules keep evaluation order.
func (e *DecisionEngine) Decide(ctx context.Context, txn *domain.Transaction, rules domain.RuleSet) (*Evaluation, error) {
	catalog, err := resolveCatalog(rules)
	if err != nil {
		return nil, err
	}

	r1 := catalog[domain.RuleAmountThreshold]
	r3 := catalog[domain.RuleNewDevice]
	r4 := catalog[domain.RuleVelocity]
	r5 := catalog[domain.RuleNewMerchant]
	r6 := catalog[domain.RuleRiskyBIN]

	ev := &Evaluation{
		Reasons: []string{},
		Fired:   []domain.RuleID{},
	}

	if txn.Amount.GreaterThan(*r1.Threshold) {
		ev.fire(r1, domain.ReasonAmountAboveThreshold)
	}

	// One history window serves both novelty rules. The scored transaction is
	// already stored, so one extra row is read to keep historyLimit earlier ones.
	recent, err := e.history.Recent(ctx, txn.UserID, e.historyLimit+1)
	if err != nil {
		return nil, fmt.Errorf("load history for user %s: %w", txn.UserID, err)
	}
	history := recent.Excluding(txn.TransactionID, e.historyLimit)

	if _, seen := history.Devices(txn.TransactionID)[txn.DeviceID]; !seen {
		ev.fire(r3, r3.Name)
	}

	attempts := decimal.NewFromInt(int64(txn.AttemptsLast10Min))
	if attempts.GreaterThan(r4.ThresholdOr(domain.DefaultVelocityThreshold)) {
		ev.fire(r4, r4.Name)
	}

	if txn.Amount.GreaterThan(r5.ThresholdOr(domain.DefaultNewMerchantThreshold)) {
		if _, seen := history.Merchants(txn.TransactionID)[txn.MerchantID]; !seen {
			ev.fire(r5, r5.Name)
		}
	}

	if r6.Listed(txn.CardBIN) {
		ev.fire(r6, r6.Name)
	}

	ev.Tier = domain.Classify(ev.Score)

	return ev, nil
}

// resolveCatalog looks up every catalog rule up front so a missing rule is
// reported before any history I/O.
func resolveCatalog(rules domain.RuleSet) (map[domain.RuleID]domain.Rule, error) {
	catalog := make(map[domain.RuleID]domain.Rule, len(domain.Catalog))
	for _, id := range domain.Catalog {
		rule, err := rules.Lookup(id)
		if err != nil {
			return nil, err
		}
		catalog[id] = rule
	}

	if catalog[domain.RuleAmountThreshold].Threshold == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRuleThresholdMissing, domain.RuleAmountThreshold)
	}

	return catalog, nil
}
