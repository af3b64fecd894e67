package customers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByIDDecodesJSONBArrays(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"customer_id", "customer_name", "customer_type", "segment_id", "email", "phone_number",
		"annual_income", "credit_score", "interests", "available_balance", "product_ids",
		"created_at", "updated_at",
	}).AddRow(
		"c1", "Ava Thompson", "Individual", "SEG-IND", "ava@example.com", "555-0101",
		85000.0, 720, []byte(`["travel", "dining"]`), 5400.25, []byte(`["p1"]`),
		now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE customer_id =").
		WithArgs("c1").
		WillReturnRows(rows)

	cust, err := repo.GetByID(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if cust.CustomerID != "c1" || cust.SegmentID != "SEG-IND" {
		t.Fatalf("unexpected customer: %+v", cust)
	}
	if len(cust.Interests) != 2 || cust.Interests[0] != "travel" {
		t.Fatalf("interests not decoded: %+v", cust.Interests)
	}
	if !cust.HoldsProduct("p1") {
		t.Fatalf("product_ids not decoded: %+v", cust.ProductIDs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE customer_id =").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
