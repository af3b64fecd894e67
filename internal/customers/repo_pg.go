package customers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Interests and product ids are stored
// as jsonb arrays.
type PGRepo struct {
	DB *sql.DB
}

// GetByID fetches a customer by id.
func (r *PGRepo) GetByID(ctx context.Context, customerID string) (Customer, error) {
	const query = `
SELECT customer_id, customer_name, customer_type, segment_id, email, phone_number, annual_income, credit_score, interests, available_balance, product_ids, created_at, updated_at
FROM customers
WHERE customer_id = $1
LIMIT 1`

	var cust Customer
	var interests, productIDs []byte
	err := r.DB.QueryRowContext(ctx, query, customerID).Scan(
		&cust.CustomerID,
		&cust.CustomerName,
		&cust.CustomerType,
		&cust.SegmentID,
		&cust.Email,
		&cust.PhoneNumber,
		&cust.AnnualIncome,
		&cust.CreditScore,
		&interests,
		&cust.AvailableBalance,
		&productIDs,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}

	if len(interests) > 0 {
		if err := json.Unmarshal(interests, &cust.Interests); err != nil {
			return Customer{}, fmt.Errorf("decode interests for %s: %w", customerID, err)
		}
	}
	if len(productIDs) > 0 {
		if err := json.Unmarshal(productIDs, &cust.ProductIDs); err != nil {
			return Customer{}, fmt.Errorf("decode product_ids for %s: %w", customerID, err)
		}
	}
	return cust, nil
}

var _ Repo = (*PGRepo)(nil)
