// Seed sample data for local development: go run ./cmd/seed
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"recommendation-backend/internal/shared/config"
	"recommendation-backend/internal/shared/storage/db"
	"recommendation-backend/internal/transactions"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())

	database, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("connect database: %v", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Printf("run migrations: %v", err)
		os.Exit(1)
	}

	if err := seed(ctx, database); err != nil {
		log.Printf("seed: %v", err)
		os.Exit(1)
	}
	log.Printf("seed data inserted")
}

func seed(ctx context.Context, database *sql.DB) error {
	if err := seedSegments(ctx, database); err != nil {
		return err
	}
	if err := seedProducts(ctx, database); err != nil {
		return err
	}
	if err := seedCustomers(ctx, database); err != nil {
		return err
	}
	return seedTransactions(ctx, database)
}

func seedSegments(ctx context.Context, database *sql.DB) error {
	rows := [][4]string{
		{"SEG-IND", "Individual Customers", "Individual", "Personal banking segment tailored for individual customers with diverse financial needs."},
		{"SEG-SMB", "Small Business Clients", "Small Business", "Financial solutions designed for small business owners to help grow their enterprises."},
		{"SEG-CORP", "Corporate Clients", "Corporate", "Comprehensive banking services and products for large corporations with complex financial requirements."},
	}
	for _, r := range rows {
		_, err := database.ExecContext(ctx, `
			INSERT INTO segments (segment_id, segment_name, customer_type, description)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (segment_id) DO NOTHING`,
			r[0], r[1], r[2], r[3],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedProducts(ctx context.Context, database *sql.DB) error {
	rows := [][6]string{
		{"PROD-TRAVEL-CC", "Travel Rewards Credit Card", "Credit Card", "Earns miles on travel and dining purchases with no foreign transaction fees.", "Credit score 680 or above.", "SEG-IND"},
		{"PROD-HYSA", "High Yield Savings Account", "Savings", "Competitive interest rate on balances above 1000 with no monthly fee.", "Individual customers with a checking account in good standing.", "SEG-IND"},
		{"PROD-AUTO-LOAN", "Auto Loan", "Loan", "Fixed rate financing for new and used vehicles up to 72 months.", "Credit score 640 or above and verifiable income.", "SEG-IND"},
		{"PROD-BIZ-LOC", "Business Line of Credit", "Credit", "Revolving credit line for working capital and seasonal expenses.", "Two years in business with annual revenue above 100000.", "SEG-SMB"},
		{"PROD-BIZ-CHK", "Business Checking Plus", "Checking", "High transaction limits with integrated payroll and invoicing tools.", "Registered small business with active operations.", "SEG-SMB"},
		{"PROD-CORP-TREASURY", "Corporate Treasury Services", "Treasury", "Liquidity management, sweep accounts and multi-currency support.", "Corporate clients with annual revenue above 10 million.", "SEG-CORP"},
	}
	for _, r := range rows {
		_, err := database.ExecContext(ctx, `
			INSERT INTO products (product_id, product_name, product_type, description, eligibility_criteria, segment_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (product_id) DO NOTHING`,
			r[0], r[1], r[2], r[3], r[4], r[5],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type seedCustomer struct {
	id           string
	name         string
	customerType string
	segmentID    string
	email        string
	phone        string
	income       float64
	creditScore  int
	interests    []string
	balance      float64
	productIDs   []string
}

func seedCustomers(ctx context.Context, database *sql.DB) error {
	rows := []seedCustomer{
		{
			id: "CUST-1001", name: "Ava Thompson", customerType: "Individual", segmentID: "SEG-IND",
			email: "ava.thompson@example.com", phone: "555-0101",
			income: 85000, creditScore: 720,
			interests: []string{"travel", "dining", "fitness"},
			balance:   5400.25, productIDs: []string{"PROD-HYSA"},
		},
		{
			id: "CUST-1002", name: "Marcus Lee", customerType: "Individual", segmentID: "SEG-IND",
			email: "marcus.lee@example.com", phone: "555-0102",
			income: 62000, creditScore: 655,
			interests: []string{"automotive", "electronics"},
			balance:   1875.00, productIDs: []string{},
		},
		{
			id: "CUST-2001", name: "Rivera Bakery LLC", customerType: "Small Business", segmentID: "SEG-SMB",
			email: "owner@riverabakery.example.com", phone: "555-0201",
			income: 240000, creditScore: 700,
			interests: []string{"equipment", "payroll", "supplies"},
			balance:   32500.75, productIDs: []string{"PROD-BIZ-CHK"},
		},
	}
	for _, c := range rows {
		interests, err := json.Marshal(c.interests)
		if err != nil {
			return err
		}
		productIDs, err := json.Marshal(c.productIDs)
		if err != nil {
			return err
		}
		_, err = database.ExecContext(ctx, `
			INSERT INTO customers (customer_id, customer_name, customer_type, segment_id, email, phone_number,
				annual_income, credit_score, interests, available_balance, product_ids)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (customer_id) DO NOTHING`,
			c.id, c.name, c.customerType, c.segmentID, c.email, c.phone,
			c.income, c.creditScore, interests, c.balance, productIDs,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedTransactions(ctx context.Context, database *sql.DB) error {
	day := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	rows := []struct {
		customerID string
		at         time.Time
		txType     string
		amount     float64
		category   string
		desc       string
		balance    float64
	}{
		{"CUST-1001", day.Add(9 * time.Hour), transactions.TypeDebit, 1250.00, "Travel", "Flight booking - round trip", 4150.25},
		{"CUST-1001", day.Add(13 * time.Hour), transactions.TypeDebit, 86.40, "Dining", "Dinner at downtown bistro", 4063.85},
		{"CUST-1002", day.Add(10 * time.Hour), transactions.TypeDebit, 3200.00, "Automotive", "Used car down payment", 675.00},
		{"CUST-1002", day.Add(16 * time.Hour), transactions.TypeCredit, 2000.00, "Salary", "Payroll deposit", 2675.00},
		{"CUST-2001", day.Add(8 * time.Hour), transactions.TypeDebit, 4800.00, "Equipment", "Commercial oven purchase", 27700.75},
	}
	for _, r := range rows {
		_, err := database.ExecContext(ctx, `
			INSERT INTO transactions (transaction_id, customer_id, transaction_date, transaction_type,
				amount, merchant_category, description, balance_after_transaction,
				is_processed_for_recommendation, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $3, $3)
			ON CONFLICT (transaction_id) DO NOTHING`,
			uuid.NewString(), r.customerID, r.at, r.txType,
			r.amount, r.category, r.desc, r.balance,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
