package domain

import (
	"errors"
	"fmt"
)

var (
	// Request errors
	ErrValidation = errors.New("validation failed")

	// Lookup errors
	ErrDecisionNotFound = errors.New("decision not found")

	// Rule catalog errors
	ErrConfiguration        = errors.New("rule configuration error")
	ErrRuleMissing          = fmt.Errorf("%w: rule missing from catalog", ErrConfiguration)
	ErrRuleThresholdMissing = fmt.Errorf("%w: rule has no threshold", ErrConfiguration)

	// Infrastructure errors
	ErrUnavailable = errors.New("backing store unavailable")
)
