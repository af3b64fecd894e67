package customers

import "context"

// Repo is the read-only persistence boundary for customers.
type Repo interface {
	// GetByID returns the customer or ErrNotFound.
	GetByID(ctx context.Context, customerID string) (Customer, error)
}
