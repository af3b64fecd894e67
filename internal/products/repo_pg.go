package products

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ListBySegment returns all products in the segment, in store order.
func (r *PGRepo) ListBySegment(ctx context.Context, segmentID string) ([]Product, error) {
	const query = `
SELECT product_id, product_name, product_type, description, eligibility_criteria, segment_id, created_at
FROM products
WHERE segment_id = $1`

	rows, err := r.DB.QueryContext(ctx, query, segmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ProductID,
			&p.ProductName,
			&p.ProductType,
			&p.Description,
			&p.EligibilityCriteria,
			&p.SegmentID,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
