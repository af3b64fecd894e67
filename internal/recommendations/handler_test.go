package recommendations_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"recommendation-backend/internal/bootstrap"
	"recommendation-backend/internal/customers"
	"recommendation-backend/internal/llm"
	"recommendation-backend/internal/products"
	"recommendation-backend/internal/shared/config"
	"recommendation-backend/internal/transactions"
)

type stubLLM struct {
	reply string
	err   error
}

func (s stubLLM) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestApp(t *testing.T, model llm.Client) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LLMProvider:     "none",
		Env:             "dev",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	if model != nil {
		app.RecommendationService.LLM = model
	}
	return app
}

func seedDay(t *testing.T, app *bootstrap.App, day time.Time, ids ...string) {
	t.Helper()
	repo, ok := app.TransactionsRepo.(*transactions.MemoryRepo)
	if !ok {
		t.Fatalf("expected memory transactions repo, got %T", app.TransactionsRepo)
	}
	for i, id := range ids {
		repo.Seed(transactions.Transaction{
			TransactionID:           id,
			CustomerID:              "c1",
			TransactionDate:         day.Add(time.Duration(i+1) * time.Hour),
			TransactionType:         transactions.TypeDebit,
			Amount:                  500,
			MerchantCategory:        "Travel",
			Description:             "booking",
			BalanceAfterTransaction: 2000,
		})
	}
}

func TestAnalyzeByDateMissingDate(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/analyze/by_date", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", body.Error.Code)
	}
}

func TestAnalyzeByDateEmptyDayReturnsReport(t *testing.T) {
	app := newTestApp(t, stubLLM{reply: "[]"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/analyze/by_date", strings.NewReader(`{"date": "2/15/2025"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var report struct {
		Message string `json:"message"`
		Date    string `json:"date"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Message != "No unprocessed transactions found for this date" {
		t.Fatalf("unexpected message: %q", report.Message)
	}
	if report.Date != "2/15/2025" {
		t.Fatalf("expected echoed date, got %q", report.Date)
	}
}

func TestAnalyzeByDateReturnsPicks(t *testing.T) {
	app := newTestApp(t, stubLLM{reply: `[{"transaction_id": "t1", "category": "Travel", "description": "booking", "type": "Debit", "reason": "travel spend"}]`})
	seedDay(t, app, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), "t1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/analyze/by_date", strings.NewReader(`{"date": "2/15/2025"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var picks []struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&picks); err != nil {
		t.Fatalf("decode picks: %v", err)
	}
	if len(picks) != 1 || picks[0].TransactionID != "t1" {
		t.Fatalf("unexpected picks: %+v", picks)
	}
}

func TestClassifyByDateMarksAndReturnsResult(t *testing.T) {
	app := newTestApp(t, stubLLM{reply: `{"valid_transactions": [{"transaction_id": "t1", "reason": "travel spend"}]}`})
	day := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	seedDay(t, app, day, "t1", "t2")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/analyze_recommendable_transactions/by_date", strings.NewReader(`{"date": "2/15/2025"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Result []struct {
			TransactionID string `json:"transaction_id"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(body.Result) != 1 || body.Result[0].TransactionID != "t1" {
		t.Fatalf("unexpected result: %+v", body.Result)
	}

	unprocessed, err := app.TransactionsRepo.ListUnprocessedByDate(context.Background(), day)
	if err != nil {
		t.Fatalf("ListUnprocessedByDate: %v", err)
	}
	if len(unprocessed) != 1 || unprocessed[0].TransactionID != "t2" {
		t.Fatalf("expected only t2 unprocessed, got %+v", unprocessed)
	}
}

func TestClassifyByDateMalformedReplyReturns502(t *testing.T) {
	app := newTestApp(t, stubLLM{reply: "no json here"})
	seedDay(t, app, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), "t1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/analyze_recommendable_transactions/by_date", strings.NewReader(`{"date": "2/15/2025"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				RawResponse string `json:"raw_response"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "malformed_response" {
		t.Fatalf("expected malformed_response, got %q", body.Error.Code)
	}
	if body.Error.Details.RawResponse != "no json here" {
		t.Fatalf("expected raw reply in details, got %q", body.Error.Details.RawResponse)
	}
}

func TestAnalyzeByDateProviderErrorReturns502(t *testing.T) {
	app := newTestApp(t, stubLLM{err: &llm.ProviderError{Err: errors.New("boom")}})
	seedDay(t, app, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), "t1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/analyze/by_date", strings.NewReader(`{"date": "2/15/2025"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "provider_error") {
		t.Fatalf("expected provider_error code, got %s", resp.Body.String())
	}
}

func TestRankCustomerProductsRequiresQueryParams(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/analyze_customer_product?customer_id=c1", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestRankCustomerProductsUnknownCustomerReturns404(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/analyze_customer_product?customer_id=nope&start_date=2/1/2025&end_date=2/28/2025", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRankCustomerProductsReturnsRanking(t *testing.T) {
	app := newTestApp(t, stubLLM{reply: `{"valid_products": [{"product_id": "p1", "product_name": "Auto Loan", "reason": "car purchase", "priority": "1"}]}`})

	custRepo, ok := app.CustomersRepo.(*customers.MemoryRepo)
	if !ok {
		t.Fatalf("expected memory customers repo, got %T", app.CustomersRepo)
	}
	custRepo.Seed(customers.Customer{
		CustomerID:  "c1",
		SegmentID:   "SEG-IND",
		CreditScore: 700,
		Interests:   []string{"automotive"},
	})
	prodRepo, ok := app.ProductsRepo.(*products.MemoryRepo)
	if !ok {
		t.Fatalf("expected memory products repo, got %T", app.ProductsRepo)
	}
	prodRepo.Seed(products.Product{ProductID: "p1", ProductName: "Auto Loan", ProductType: "Loan", SegmentID: "SEG-IND"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/analyze_customer_product?customer_id=c1&start_date=2/1/2025&end_date=2/28/2025", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Result []struct {
			ProductID string `json:"product_id"`
			Priority  int    `json:"priority"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(body.Result) != 1 || body.Result[0].ProductID != "p1" || body.Result[0].Priority != 1 {
		t.Fatalf("unexpected result: %+v", body.Result)
	}
}
