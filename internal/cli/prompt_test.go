package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseID(t *testing.T) {
	if id, ok := ParseID(" 12 "); !ok || id != 12 {
		t.Fatalf("ParseID: got %d %v", id, ok)
	}
	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		if _, ok := ParseID(raw); ok {
			t.Fatalf("ParseID(%q) should decline", raw)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	if qty, ok := ParseQuantity("4"); !ok || qty != 4 {
		t.Fatalf("ParseQuantity: got %d %v", qty, ok)
	}
	for _, raw := range []string{"0", "-1", "two"} {
		if _, ok := ParseQuantity(raw); ok {
			t.Fatalf("ParseQuantity(%q) should decline", raw)
		}
	}
}

func TestParsePrice(t *testing.T) {
	price, ok := ParsePrice(" 49.50 ")
	if !ok || !price.Equal(decimal.RequireFromString("49.5")) {
		t.Fatalf("ParsePrice: got %s %v", price, ok)
	}
	if price, ok := ParsePrice("0"); !ok || !price.IsZero() {
		t.Fatalf("zero price is valid")
	}
	for _, raw := range []string{"", "-1", "ten"} {
		if _, ok := ParsePrice(raw); ok {
			t.Fatalf("ParsePrice(%q) should decline", raw)
		}
	}
}

func TestParseStock(t *testing.T) {
	if stock, ok := ParseStock("0"); !ok || stock != 0 {
		t.Fatalf("zero stock is valid")
	}
	if _, ok := ParseStock("-2"); ok {
		t.Fatalf("negative stock should decline")
	}
}

func TestParseThreshold(t *testing.T) {
	if v, ok := ParseThreshold("-2"); !ok || v != -2 {
		t.Fatalf("negative thresholds are allowed: got %d %v", v, ok)
	}
	if _, ok := ParseThreshold("five"); ok {
		t.Fatalf("non-numeric threshold should decline")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	if date, ok := ParseDate("", now); !ok || date != "2026-09-01" {
		t.Fatalf("blank date defaults to today: got %q %v", date, ok)
	}
	if date, ok := ParseDate("2025-12-31", now); !ok || date != "2025-12-31" {
		t.Fatalf("explicit date: got %q %v", date, ok)
	}
	for _, raw := range []string{"31-12-2025", "2025-13-01", "yesterday"} {
		if _, ok := ParseDate(raw, now); ok {
			t.Fatalf("ParseDate(%q) should decline", raw)
		}
	}
}
