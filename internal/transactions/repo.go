package transactions

import (
	"context"
	"time"
)

// Repo is the persistence boundary for transactions: windowed reads plus the
// single conditional write the recommendation pipeline performs.
type Repo interface {
	// ListByDate returns all transactions within the calendar day, in store
	// order, regardless of the processed flag.
	ListByDate(ctx context.Context, day time.Time) ([]Transaction, error)

	// ListUnprocessedByDate returns the day's transactions still awaiting
	// recommendation processing. An empty result is a valid nothing-to-do
	// state, not an error.
	ListUnprocessedByDate(ctx context.Context, day time.Time) ([]Transaction, error)

	// ListProcessedForCustomer returns one customer's processed transactions
	// with a timestamp in [since, until].
	ListProcessedForCustomer(ctx context.Context, customerID string, since, until time.Time) ([]Transaction, error)

	// MarkProcessed sets is_processed_for_recommendation=true for exactly the
	// given ids and reports how many rows changed. Unmatched ids are silently
	// ignored; an empty set is a no-op.
	MarkProcessed(ctx context.Context, ids []string) (int64, error)
}
