package transactions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	rows []Transaction
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Seed inserts transactions, preserving insertion order.
func (r *MemoryRepo) Seed(txs ...Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, txs...)
}

// ListByDate returns all transactions for the calendar day.
func (r *MemoryRepo) ListByDate(ctx context.Context, day time.Time) ([]Transaction, error) {
	return r.filter(func(tx Transaction) bool {
		return inDay(tx.TransactionDate, day)
	}), nil
}

// ListUnprocessedByDate returns the day's transactions with the processed flag unset.
func (r *MemoryRepo) ListUnprocessedByDate(ctx context.Context, day time.Time) ([]Transaction, error) {
	return r.filter(func(tx Transaction) bool {
		return inDay(tx.TransactionDate, day) && !tx.IsProcessedForRecommendation
	}), nil
}

// ListProcessedForCustomer returns one customer's processed transactions in [since, until].
func (r *MemoryRepo) ListProcessedForCustomer(ctx context.Context, customerID string, since, until time.Time) ([]Transaction, error) {
	return r.filter(func(tx Transaction) bool {
		return tx.CustomerID == customerID &&
			tx.IsProcessedForRecommendation &&
			!tx.TransactionDate.Before(since) &&
			!tx.TransactionDate.After(until)
	}), nil
}

// MarkProcessed flips the processed flag for exactly the given ids.
func (r *MemoryRepo) MarkProcessed(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for i := range r.rows {
		if _, ok := wanted[r.rows[i].TransactionID]; !ok {
			continue
		}
		if !r.rows[i].IsProcessedForRecommendation {
			r.rows[i].IsProcessedForRecommendation = true
			r.rows[i].UpdatedAt = time.Now().UTC()
			updated++
		}
	}
	return updated, nil
}

func (r *MemoryRepo) filter(keep func(Transaction) bool) []Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Transaction
	for _, tx := range r.rows {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func inDay(ts, day time.Time) bool {
	start, end := DayWindow(day)
	return !ts.Before(start) && !ts.After(end)
}

var _ Repo = (*MemoryRepo)(nil)
