package recommendations

import (
	"errors"
	"testing"
)

func TestStripFencesRemovesWrapper(t *testing.T) {
	fenced := "```json\n[{\"transaction_id\": \"t1\"}]\n```"
	plain := "[{\"transaction_id\": \"t1\"}]"

	if got := stripFences(fenced); got != plain {
		t.Fatalf("stripFences(fenced) = %q, want %q", got, plain)
	}
	if got := stripFences(plain); got != plain {
		t.Fatalf("stripFences(plain) = %q, want unchanged", got)
	}
	// Idempotent: stripping twice changes nothing.
	if got := stripFences(stripFences(fenced)); got != plain {
		t.Fatalf("stripFences twice = %q, want %q", got, plain)
	}
}

func TestParsePicksFencedAndPlainAgree(t *testing.T) {
	body := `[{"transaction_id": "t1", "category": "Travel", "description": "flight", "type": "Debit", "reason": "travel spend"}]`
	fenced := "```json\n" + body + "\n```"

	fromPlain, err := parsePicks(body)
	if err != nil {
		t.Fatalf("parsePicks(plain): %v", err)
	}
	fromFenced, err := parsePicks(fenced)
	if err != nil {
		t.Fatalf("parsePicks(fenced): %v", err)
	}
	if len(fromPlain) != 1 || len(fromFenced) != 1 {
		t.Fatalf("expected one pick from each, got %d and %d", len(fromPlain), len(fromFenced))
	}
	if fromPlain[0] != fromFenced[0] {
		t.Fatalf("fenced and plain parses differ: %+v vs %+v", fromPlain[0], fromFenced[0])
	}
	if fromPlain[0].TransactionID != "t1" || fromPlain[0].Category != "Travel" {
		t.Fatalf("unexpected pick: %+v", fromPlain[0])
	}
}

func TestParseValidTransactionsMissingFieldIsEmpty(t *testing.T) {
	valid, err := parseValidTransactions(`{}`)
	if err != nil {
		t.Fatalf("parseValidTransactions: %v", err)
	}
	if valid == nil {
		t.Fatalf("expected non-nil empty slice")
	}
	if len(valid) != 0 {
		t.Fatalf("expected empty slice, got %d entries", len(valid))
	}
}

func TestParseValidTransactionsMalformedCarriesRaw(t *testing.T) {
	raw := "```\nSure! Here are the transactions you asked for.\n```"
	_, err := parseValidTransactions(raw)
	if err == nil {
		t.Fatalf("expected error for non-JSON reply")
	}
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %T", err)
	}
	if malformed.Raw != "Sure! Here are the transactions you asked for." {
		t.Fatalf("expected de-fenced raw text, got %q", malformed.Raw)
	}
}

func TestParseValidProductsAcceptsStringAndNumberPriority(t *testing.T) {
	raw := `{"valid_products": [
		{"product_id": "p1", "product_name": "Travel Card", "reason": "travel spend", "priority": "2"},
		{"product_id": "p2", "product_name": "Savings", "reason": "high balance", "priority": 1}
	]}`
	ranked, err := parseValidProducts(raw)
	if err != nil {
		t.Fatalf("parseValidProducts: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 products, got %d", len(ranked))
	}
	if ranked[0].Priority != 2 {
		t.Fatalf("expected quoted priority 2, got %d", ranked[0].Priority)
	}
	if ranked[1].Priority != 1 {
		t.Fatalf("expected numeric priority 1, got %d", ranked[1].Priority)
	}
}

func TestParseValidProductsMissingFieldIsEmpty(t *testing.T) {
	ranked, err := parseValidProducts(`{"note": "no matches"}`)
	if err != nil {
		t.Fatalf("parseValidProducts: %v", err)
	}
	if ranked == nil || len(ranked) != 0 {
		t.Fatalf("expected non-nil empty slice, got %#v", ranked)
	}
}
