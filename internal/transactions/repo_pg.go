package transactions

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `transaction_id, customer_id, transaction_date, transaction_type, amount, merchant_category, description, balance_after_transaction, is_processed_for_recommendation, created_at, updated_at`

// ListByDate returns all transactions for the calendar day.
func (r *PGRepo) ListByDate(ctx context.Context, day time.Time) ([]Transaction, error) {
	query := `
SELECT ` + selectColumns + `
FROM transactions
WHERE transaction_date >= $1 AND transaction_date <= $2`
	start, end := DayWindow(day)
	return r.list(ctx, query, start, end)
}

// ListUnprocessedByDate returns the day's transactions with the processed flag unset.
func (r *PGRepo) ListUnprocessedByDate(ctx context.Context, day time.Time) ([]Transaction, error) {
	query := `
SELECT ` + selectColumns + `
FROM transactions
WHERE transaction_date >= $1 AND transaction_date <= $2 AND is_processed_for_recommendation = FALSE`
	start, end := DayWindow(day)
	return r.list(ctx, query, start, end)
}

// ListProcessedForCustomer returns one customer's processed transactions in [since, until].
func (r *PGRepo) ListProcessedForCustomer(ctx context.Context, customerID string, since, until time.Time) ([]Transaction, error) {
	query := `
SELECT ` + selectColumns + `
FROM transactions
WHERE customer_id = $1 AND transaction_date >= $2 AND transaction_date <= $3 AND is_processed_for_recommendation = TRUE`
	return r.list(ctx, query, customerID, since, until)
}

// MarkProcessed flips the processed flag for exactly the given ids.
func (r *PGRepo) MarkProcessed(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := `
UPDATE transactions
SET is_processed_for_recommendation = TRUE, updated_at = now()
WHERE transaction_id IN (` + strings.Join(placeholders, ", ") + `)`

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	updated, _ := res.RowsAffected()
	return updated, nil
}

func (r *PGRepo) list(ctx context.Context, query string, args ...any) ([]Transaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var tx Transaction
		if err := rows.Scan(
			&tx.TransactionID,
			&tx.CustomerID,
			&tx.TransactionDate,
			&tx.TransactionType,
			&tx.Amount,
			&tx.MerchantCategory,
			&tx.Description,
			&tx.BalanceAfterTransaction,
			&tx.IsProcessedForRecommendation,
			&tx.CreatedAt,
			&tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
