package customers

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	rows map[string]Customer
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[string]Customer)}
}

// Seed inserts customers keyed by id.
func (r *MemoryRepo) Seed(custs ...Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range custs {
		r.rows[c.CustomerID] = c
	}
}

// GetByID returns the customer or ErrNotFound.
func (r *MemoryRepo) GetByID(ctx context.Context, customerID string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cust, ok := r.rows[customerID]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return cust, nil
}

var _ Repo = (*MemoryRepo)(nil)
