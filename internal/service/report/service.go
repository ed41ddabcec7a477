package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
)

// DateFormat is the day granularity used by sales reports.
const DateFormat = "2006-01-02"

type productStore interface {
	Load(ctx context.Context) ([]domain.Product, int, error)
}

type ledger interface {
	Entries(ctx context.Context) (entries []domain.LedgerEntry, skipped int, err error)
}

// Service aggregates persisted state for the report menus.
type Service struct {
	products productStore
	sales    ledger
}

func New(products productStore, sales ledger) *Service {
	return &Service{products: products, sales: sales}
}

// DaySummary totals the completed checkouts for one day.
type DaySummary struct {
	Date    string
	Bills   int
	Total   decimal.Decimal
	Skipped int
}

// SalesByDate sums ledger entries whose timestamp falls on date
// (DateFormat). Malformed ledger rows are skipped by the store and
// surfaced in the summary rather than failing the report.
func (s *Service) SalesByDate(ctx context.Context, date string) (DaySummary, error) {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return DaySummary{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	entries, skipped, err := s.sales.Entries(ctx)
	if err != nil {
		return DaySummary{}, fmt.Errorf("scan ledger: %w", err)
	}
	sum := DaySummary{Date: date, Total: decimal.Zero, Skipped: skipped}
	for _, e := range entries {
		if e.CreatedAt.Format(DateFormat) != date {
			continue
		}
		sum.Bills++
		sum.Total = sum.Total.Add(e.Total)
	}
	return sum, nil
}

// LowStock returns the products whose stock is at or below threshold.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	products, _, err := s.products.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	var low []domain.Product
	for _, p := range products {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low, nil
}
