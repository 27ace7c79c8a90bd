package postgres

import (
	"context"
	"fmt"

	"github.com/iho/fraudmini/internal/domain"
	"github.com/iho/fraudmini/internal/infrastructure/postgres/generated"
)

// TransactionRepository implements usecase.TransactionRepository and
// usecase.HistoryLookup.
type TransactionRepository struct {
	queries *generated.Queries
	retrier *Retrier
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db generated.DBTX, retrier *Retrier) *TransactionRepository {
	return &TransactionRepository{
		queries: generated.New(db),
		retrier: retrier,
	}
}

// Put stores a transaction, replacing any row with the same ID.
func (r *TransactionRepository) Put(ctx context.Context, txn *domain.Transaction) error {
	return r.queries.UpsertTransaction(ctx, generated.UpsertTransactionParams{
		TransactionID:     txn.TransactionID,
		UserID:            txn.UserID,
		Amount:            decimalToNumeric(txn.Amount),
		Currency:          txn.Currency,
		MerchantID:        txn.MerchantID,
		Channel:           txn.Channel,
		Ts:                timeToPgTimestamptz(txn.Ts),
		Ip:                txn.IP,
		Country:           txn.Country,
		DeviceID:          txn.DeviceID,
		CardBin:           txn.CardBIN,
		CardLast4:         txn.CardLast4,
		AttemptsLast10min: int32(txn.AttemptsLast10Min),
		CreatedAt:         timeToPgTimestamptz(txn.CreatedAt),
	})
}

// RecentByUser returns up to limit of the user's transactions, newest first.
func (r *TransactionRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	var rows []generated.Transaction
	err := r.retrier.Retry(ctx, func() error {
		var err error
		rows, err = r.queries.ListRecentTransactionsByUser(ctx, generated.ListRecentTransactionsByUserParams{
			UserID: userID,
			Limit:  int32(limit),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions for user %s: %w", userID, err)
	}

	txns := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, rowToTransaction(row))
	}

	return txns, nil
}

// Recent implements usecase.HistoryLookup.
func (r *TransactionRepository) Recent(ctx context.Context, userID string, limit int) (domain.History, error) {
	txns, err := r.RecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return domain.History(txns), nil
}
