package customers

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no customer matches the given id.
var ErrNotFound = errors.New("customer not found")

// Customer is a bank customer profile. Read-only to the recommendation
// pipeline.
type Customer struct {
	CustomerID       string    `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerType     string    `json:"customer_type"`
	SegmentID        string    `json:"segment_id"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	AnnualIncome     float64   `json:"annual_income"`
	CreditScore      int       `json:"credit_score"`
	Interests        []string  `json:"interests"`
	AvailableBalance float64   `json:"available_balance"`
	ProductIDs       []string  `json:"product_ids"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HoldsProduct reports whether the customer already holds the given product.
func (c Customer) HoldsProduct(productID string) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
