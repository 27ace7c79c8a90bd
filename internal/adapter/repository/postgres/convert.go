package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/infrastructure/postgres/generated"
)

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

// optionalDecimalToNumeric maps nil to SQL NULL.
func optionalDecimalToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return decimalToNumeric(*d)
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func numericToOptionalDecimal(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := numericToDecimal(n)
	return &d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:     row.TransactionID,
		UserID:            row.UserID,
		Amount:            numericToDecimal(row.Amount),
		Currency:          row.Currency,
		MerchantID:        row.MerchantID,
		Channel:           row.Channel,
		Ts:                row.Ts.Time.UTC(),
		IP:                row.Ip,
		Country:           row.Country,
		DeviceID:          row.DeviceID,
		CardBIN:           row.CardBin,
		CardLast4:         row.CardLast4,
		AttemptsLast10Min: int(row.AttemptsLast10min),
		CreatedAt:         row.CreatedAt.Time.UTC(),
	}
}

func rowToDecision(row generated.Decision) *domain.Decision {
	fired := make([]domain.RuleID, 0, len(row.RulesFired))
	for _, id := range row.RulesFired {
		fired = append(fired, domain.RuleID(id))
	}

	return &domain.Decision{
		TransactionID: row.TransactionID,
		Score:         int(row.Score),
		Tier:          domain.Tier(row.Decision),
		Reasons:       nonNil(row.Reasons),
		RuleVersion:   row.RuleVersion,
		RulesFired:    fired,
		CreatedAt:     row.CreatedAt.Time.UTC(),
	}
}

func rowToRule(row generated.Rule) domain.Rule {
	return domain.Rule{
		ID:        domain.RuleID(row.RuleID),
		Name:      row.Name,
		Weight:    int(row.Weight),
		Threshold: numericToOptionalDecimal(row.Threshold),
		List:      row.List,
	}
}
