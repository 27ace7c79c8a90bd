package usecase

const (
	// RulePageSize is the page size used when scanning the rule store.
	RulePageSize = 100

	// HistoryLimit bounds the history window used for novelty checks.
	HistoryLimit = 50

	// DefaultRuleVersion is reported when no rule version is configured.
	DefaultRuleVersion = "v1"

	// AlertSubject is the subject of decision alerts.
	AlertSubject = "fraud decision"
)
