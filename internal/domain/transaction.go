package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single payment event submitted for scoring.
type Transaction struct {
	TransactionID     string          `json:"transaction_id"`
	UserID            string          `json:"user_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency,omitempty"`
	MerchantID        string          `json:"merchant_id,omitempty"`
	Channel           string          `json:"channel,omitempty"`
	Ts                time.Time       `json:"ts"`
	IP                string          `json:"ip,omitempty"`
	Country           string          `json:"country,omitempty"`
	DeviceID          string          `json:"device_id,omitempty"`
	CardBIN           string          `json:"card_bin,omitempty"`
	CardLast4         string          `json:"card_last4,omitempty"`
	AttemptsLast10Min int             `json:"attempts_last_10min"`
	CreatedAt         time.Time       `json:"created_at,omitzero"`
}

// History is a user's recent transactions, most recent first.
type History []*Transaction

// Devices returns the set of device IDs seen in the history, skipping the
// transaction identified by exclude.
func (h History) Devices(exclude string) map[string]struct{} {
	return h.collect(exclude, func(t *Transaction) string { return t.DeviceID })
}

// Merchants returns the set of merchant IDs seen in the history, skipping the
// transaction identified by exclude.
func (h History) Merchants(exclude string) map[string]struct{} {
	return h.collect(exclude, func(t *Transaction) string { return t.MerchantID })
}

// Excluding drops the transaction identified by id and caps the result at
// limit entries.
func (h History) Excluding(id string, limit int) History {
	out := make(History, 0, min(len(h), limit))
	for _, t := range h {
		if len(out) == limit {
			break
		}
		if t.TransactionID != id {
			out = append(out, t)
		}
	}
	return out
}

func (h History) collect(exclude string, field func(*Transaction) string) map[string]struct{} {
	set := make(map[string]struct{}, len(h))
	for _, t := range h {
		if t.TransactionID == exclude {
			continue
		}
		if v := field(t); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
