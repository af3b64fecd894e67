package recommendations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recommendation-backend/internal/customers"
	"recommendation-backend/internal/llm"
	"recommendation-backend/internal/products"
	"recommendation-backend/internal/shared/telemetry"
	"recommendation-backend/internal/transactions"
)

const noUnprocessedMessage = "No unprocessed transactions found for this date"

// Service orchestrates the recommendation pipeline. Each flow runs
// Fetch -> Prompt -> Invoke -> Parse -> (Mutate) -> Return and stops at the
// first failing step. Only ClassifyByDate mutates the store, and only after a
// successful parse.
type Service struct {
	Transactions transactions.Repo
	Customers    customers.Repo
	Products     products.Repo
	LLM          llm.Client
	Temperature  float32
}

// PickByDate runs the advisory flow: ask the model which of the day's
// unprocessed transactions deserve a product recommendation. It never mutates
// the store.
func (s *Service) PickByDate(ctx context.Context, dateStr string) (PickOutcome, error) {
	day, err := transactions.ParseDate(dateStr)
	if err != nil {
		return PickOutcome{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	txs, err := s.Transactions.ListUnprocessedByDate(ctx, day)
	if err != nil {
		return PickOutcome{}, fmt.Errorf("list unprocessed transactions: %w", err)
	}
	if len(txs) == 0 {
		return PickOutcome{Report: &AdvisoryReport{Message: noUnprocessedMessage, Date: dateStr}}, nil
	}

	system, user := BuildPickPrompts(txs)
	raw, err := s.LLM.Complete(ctx, system, user, s.Temperature)
	if err != nil {
		return PickOutcome{}, err
	}

	picks, err := parsePicks(raw)
	if err != nil {
		return PickOutcome{}, err
	}

	telemetry.Info("recommendations.pick", map[string]any{
		"date":       dateStr,
		"candidates": len(txs),
		"picked":     len(picks),
	})
	return PickOutcome{Picks: picks}, nil
}

// ClassifyByDate runs the committing flow: classify the day's unprocessed
// transactions and flip the processed flag for the selected subset. A parse
// or provider failure leaves the store untouched.
func (s *Service) ClassifyByDate(ctx context.Context, dateStr string) (ClassifyOutcome, error) {
	day, err := transactions.ParseDate(dateStr)
	if err != nil {
		return ClassifyOutcome{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	txs, err := s.Transactions.ListUnprocessedByDate(ctx, day)
	if err != nil {
		return ClassifyOutcome{}, fmt.Errorf("list unprocessed transactions: %w", err)
	}
	if len(txs) == 0 {
		return ClassifyOutcome{Report: &AdvisoryReport{Message: noUnprocessedMessage, Date: dateStr}}, nil
	}

	system, user := BuildClassifyPrompts(txs)
	raw, err := s.LLM.Complete(ctx, system, user, s.Temperature)
	if err != nil {
		return ClassifyOutcome{}, err
	}

	valid, err := parseValidTransactions(raw)
	if err != nil {
		return ClassifyOutcome{}, err
	}

	ids := make([]string, 0, len(valid))
	for _, v := range valid {
		ids = append(ids, v.TransactionID)
	}
	marked, err := s.Transactions.MarkProcessed(ctx, ids)
	if err != nil {
		return ClassifyOutcome{}, fmt.Errorf("mark processed: %w", err)
	}

	telemetry.Info("recommendations.classify", map[string]any{
		"date":       dateStr,
		"candidates": len(txs),
		"selected":   len(valid),
		"marked":     marked,
	})
	return ClassifyOutcome{Valid: valid, Marked: marked}, nil
}

// RankProductsForCustomer runs the ranking flow: match a customer's processed
// transactions in [since, until] against their segment's products they do not
// already hold. It never mutates the store.
func (s *Service) RankProductsForCustomer(ctx context.Context, customerID string, since, until time.Time) ([]ProductRecommendation, error) {
	cust, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer lookup %s: %w", customerID, err)
	}
	if strings.TrimSpace(cust.SegmentID) == "" {
		return nil, fmt.Errorf("customer %s: %w", customerID, ErrNoSegment)
	}

	txs, err := s.Transactions.ListProcessedForCustomer(ctx, customerID, since, until)
	if err != nil {
		return nil, fmt.Errorf("list processed transactions: %w", err)
	}

	eligible, err := s.Products.ListBySegment(ctx, cust.SegmentID)
	if err != nil {
		return nil, fmt.Errorf("list segment products: %w", err)
	}
	candidates := make([]products.Product, 0, len(eligible))
	for _, p := range eligible {
		if !cust.HoldsProduct(p.ProductID) {
			candidates = append(candidates, p)
		}
	}

	system, user := BuildRankPrompts(cust, txs, candidates)
	raw, err := s.LLM.Complete(ctx, system, user, s.Temperature)
	if err != nil {
		return nil, err
	}

	ranked, err := parseValidProducts(raw)
	if err != nil {
		return nil, err
	}

	telemetry.Info("recommendations.rank", map[string]any{
		"customer_id": customerID,
		"segment_id":  cust.SegmentID,
		"candidates":  len(candidates),
		"ranked":      len(ranked),
	})
	return ranked, nil
}
