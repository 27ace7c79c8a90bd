package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RequiredRequestFields must be present in every scoring request.
var RequiredRequestFields = []string{"transaction_id", "user_id", "ts"}

// RequiredRowFields must be present and non-empty in every ingested row.
var RequiredRowFields = []string{
	"transaction_id",
	"user_id",
	"amount",
	"currency",
	"merchant_id",
	"channel",
	"ts",
	"ip",
	"country",
	"device_id",
	"card_bin",
	"card_last4",
	"attempts_last_10min",
}

// ParseTransaction decodes a scoring request payload.
func ParseTransaction(payload []byte) (*Transaction, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON", ErrValidation)
	}

	var missing []string
	for _, name := range RequiredRequestFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields %s", ErrValidation, strings.Join(missing, ","))
	}

	var txn Transaction
	if err := json.Unmarshal(payload, &txn); err != nil {
		var typeErr *json.UnmarshalTypeError
		var timeErr *time.ParseError
		switch {
		case errors.As(err, &typeErr):
			return nil, fmt.Errorf("%w: invalid type for field %s", ErrValidation, typeErr.Field)
		case errors.As(err, &timeErr):
			return nil, fmt.Errorf("%w: ts must be an RFC 3339 timestamp", ErrValidation)
		default:
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
	}

	if txn.TransactionID == "" {
		return nil, fmt.Errorf("%w: transaction_id must not be empty", ErrValidation)
	}
	if txn.AttemptsLast10Min < 0 {
		return nil, fmt.Errorf("%w: attempts_last_10min must not be negative", ErrValidation)
	}

	return &txn, nil
}

// Row is a validated CSV record in the shape the scoring queue expects. Ts is
// forwarded as received; the scorer parses it.
type Row struct {
	TransactionID     string          `json:"transaction_id"`
	UserID            string          `json:"user_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	MerchantID        string          `json:"merchant_id"`
	Channel           string          `json:"channel"`
	Ts                string          `json:"ts"`
	IP                string          `json:"ip"`
	Country           string          `json:"country"`
	DeviceID          string          `json:"device_id"`
	CardBIN           string          `json:"card_bin"`
	CardLast4         string          `json:"card_last4"`
	AttemptsLast10Min int             `json:"attempts_last_10min"`
}

// ParseRow checks one CSV record for the required fields and coerces amount
// and attempts_last_10min. row is 1-based and excludes the header. The first
// violation wins.
func ParseRow(row int, header, record []string) (*Row, error) {
	values := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(record) {
			values[name] = record[i]
		}
	}

	for _, name := range RequiredRowFields {
		if values[name] == "" {
			return nil, &RowError{Row: row, Field: name, Reason: "missing"}
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(values["amount"]))
	if err != nil {
		return nil, &RowError{Row: row, Field: "amount", Reason: "invalid"}
	}

	attempts, err := strconv.Atoi(strings.TrimSpace(values["attempts_last_10min"]))
	if err != nil {
		return nil, &RowError{Row: row, Field: "attempts_last_10min", Reason: "invalid"}
	}

	return &Row{
		TransactionID:     values["transaction_id"],
		UserID:            values["user_id"],
		Amount:            amount,
		Currency:          values["currency"],
		MerchantID:        values["merchant_id"],
		Channel:           values["channel"],
		Ts:                values["ts"],
		IP:                values["ip"],
		Country:           values["country"],
		DeviceID:          values["device_id"],
		CardBIN:           values["card_bin"],
		CardLast4:         values["card_last4"],
		AttemptsLast10Min: attempts,
	}, nil
}
