package products

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	rows []Product
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Seed inserts products, preserving insertion order.
func (r *MemoryRepo) Seed(prods ...Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, prods...)
}

// ListBySegment returns all products in the segment, in insertion order.
func (r *MemoryRepo) ListBySegment(ctx context.Context, segmentID string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Product
	for _, p := range r.rows {
		if p.SegmentID == segmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
