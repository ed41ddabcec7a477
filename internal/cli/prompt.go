package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/service/report"
)

// Prompt validators. Each parses one raw line and reports ok=false for a
// declined value; the shell prints the refusal and returns to the menu, so
// bad input never reaches the services as a panic or sentinel-free error.

// ParseID accepts a positive integer product id.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseQuantity accepts a positive integer quantity.
func ParseQuantity(raw string) (int, bool) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		return 0, false
	}
	return qty, true
}

// ParsePrice accepts a non-negative decimal amount.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || price.IsNegative() {
		return decimal.Zero, false
	}
	return price, true
}

// ParseStock accepts a non-negative integer stock count.
func ParseStock(raw string) (int, bool) {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || stock < 0 {
		return 0, false
	}
	return stock, true
}

// ParseThreshold accepts any integer low-stock threshold.
func ParseThreshold(raw string) (int, bool) {
	threshold, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return threshold, true
}

// ParseDate accepts a YYYY-MM-DD day; blank means today.
func ParseDate(raw string, now time.Time) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(report.DateFormat), true
	}
	if _, err := time.Parse(report.DateFormat, raw); err != nil {
		return "", false
	}
	return raw, true
}
