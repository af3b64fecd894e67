package recommendations

import (
	"fmt"
	"strconv"
	"strings"
)

// RecommendedTransaction is one pick from the advisory analyze flow.
type RecommendedTransaction struct {
	TransactionID string `json:"transaction_id"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Reason        string `json:"reason"`
}

// ValidTransaction is one transaction the model selected for recommendation
// in the classify-and-commit flow.
type ValidTransaction struct {
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
}

// Priority is a product ranking position, 1 = best match. The prompt schema
// renders it quoted, so models return both numbers and numeric strings.
type Priority int

// UnmarshalJSON accepts 2 and "2".
func (p *Priority) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*p = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("priority %q: %w", raw, err)
	}
	*p = Priority(n)
	return nil
}

// ProductRecommendation is one ranked product from the customer ranking flow.
type ProductRecommendation struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Reason      string   `json:"reason"`
	Priority    Priority `json:"priority"`
}

// AdvisoryReport is the successful nothing-to-process outcome for a date with
// no unprocessed transactions. It is not an error.
type AdvisoryReport struct {
	Message string `json:"message"`
	Date    string `json:"date"`
}

// PickOutcome is the result of the advisory analyze flow: either a report or
// a list of picks.
type PickOutcome struct {
	Report *AdvisoryReport
	Picks  []RecommendedTransaction
}

// ClassifyOutcome is the result of the classify-and-commit flow.
type ClassifyOutcome struct {
	Report *AdvisoryReport
	Valid  []ValidTransaction
	Marked int64
}
