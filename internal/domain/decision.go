package domain

import "time"

// Tier is the outcome class of a scored transaction.
type Tier string

const (
	TierAllow     Tier = "allow"
	TierChallenge Tier = "challenge"
	TierBlock     Tier = "block"
)

// Score thresholds for each tier.
const (
	BlockScore     = 70
	ChallengeScore = 30
)

// ReasonAmountAboveThreshold is reported when R1 fires.
const ReasonAmountAboveThreshold = "amount_above_threshold"

// Classify maps a score to its tier.
func Classify(score int) Tier {
	switch {
	case score >= BlockScore:
		return TierBlock
	case score >= ChallengeScore:
		return TierChallenge
	default:
		return TierAllow
	}
}

// Alertable reports whether the tier should notify the alert topic.
func (t Tier) Alertable() bool {
	return t == TierChallenge || t == TierBlock
}

// Decision is the persisted result of scoring a transaction.
type Decision struct {
	TransactionID string    `json:"transaction_id"`
	Score         int       `json:"score"`
	Tier          Tier      `json:"decision"`
	Reasons       []string  `json:"reasons"`
	RuleVersion   string    `json:"rule_version"`
	RulesFired    []RuleID  `json:"rules_fired"`
	CreatedAt     time.Time `json:"created_at"`
}
