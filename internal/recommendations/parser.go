package recommendations

import (
	"encoding/json"
	"strings"
)

// stripFences removes a wrapping Markdown code fence from model output: the
// first line (``` plus optional language hint) and the trailing fence line.
// Fence-free input passes through unchanged, so the step is idempotent.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	if strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// parsePicks decodes the advisory flow's reply: a JSON array of picks.
func parsePicks(raw string) ([]RecommendedTransaction, error) {
	clean := stripFences(raw)
	var picks []RecommendedTransaction
	if err := json.Unmarshal([]byte(clean), &picks); err != nil {
		return nil, &MalformedResponseError{Raw: clean, Err: err}
	}
	return picks, nil
}

// parseValidTransactions decodes the classify flow's reply. A missing
// valid_transactions field means the model found nothing recommendable and
// decodes as an empty list, not an error.
func parseValidTransactions(raw string) ([]ValidTransaction, error) {
	clean := stripFences(raw)
	var reply struct {
		ValidTransactions []ValidTransaction `json:"valid_transactions"`
	}
	if err := json.Unmarshal([]byte(clean), &reply); err != nil {
		return nil, &MalformedResponseError{Raw: clean, Err: err}
	}
	if reply.ValidTransactions == nil {
		return []ValidTransaction{}, nil
	}
	return reply.ValidTransactions, nil
}

// parseValidProducts decodes the ranking flow's reply. Missing valid_products
// decodes as an empty list.
func parseValidProducts(raw string) ([]ProductRecommendation, error) {
	clean := stripFences(raw)
	var reply struct {
		ValidProducts []ProductRecommendation `json:"valid_products"`
	}
	if err := json.Unmarshal([]byte(clean), &reply); err != nil {
		return nil, &MalformedResponseError{Raw: clean, Err: err}
	}
	if reply.ValidProducts == nil {
		return []ProductRecommendation{}, nil
	}
	return reply.ValidProducts, nil
}
