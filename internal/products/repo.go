package products

import "context"

// Repo is the read-only persistence boundary for products.
type Repo interface {
	// ListBySegment returns all products belonging to the segment.
	ListBySegment(ctx context.Context, segmentID string) ([]Product, error)
}
