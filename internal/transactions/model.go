package transactions

import (
	"fmt"
	"time"
)

// Transaction types.
const (
	TypeDebit  = "Debit"
	TypeCredit = "Credit"
)

// DateLayout is the M/D/Y wire format used by the HTTP surface.
const DateLayout = "01/02/2006"

// Transaction is a single banking transaction. The pipeline only ever flips
// IsProcessedForRecommendation from false to true; nothing resets it.
type Transaction struct {
	TransactionID                string    `json:"transaction_id"`
	CustomerID                   string    `json:"customer_id"`
	TransactionDate              time.Time `json:"transaction_date"`
	TransactionType              string    `json:"transaction_type"`
	Amount                       float64   `json:"amount"`
	MerchantCategory             string    `json:"merchant_category"`
	Description                  string    `json:"description"`
	BalanceAfterTransaction      float64   `json:"balance_after_transaction"`
	IsProcessedForRecommendation bool      `json:"is_processed_for_recommendation"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// ParseDate parses an M/D/Y date string.
func ParseDate(raw string) (time.Time, error) {
	day, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return day, nil
}

// DayWindow returns the inclusive [00:00:00, 23:59:59] bounds of the given
// calendar day.
func DayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
	return start, end
}
