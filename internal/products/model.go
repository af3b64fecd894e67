package products

import "time"

// Product is a bank product eligible for recommendation within one segment.
// Read-only to the recommendation pipeline.
type Product struct {
	ProductID           string    `json:"product_id"`
	ProductName         string    `json:"product_name"`
	ProductType         string    `json:"product_type"`
	Description         string    `json:"description"`
	EligibilityCriteria string    `json:"eligibility_criteria"`
	SegmentID           string    `json:"segment_id"`
	CreatedAt           time.Time `json:"created_at"`
}
