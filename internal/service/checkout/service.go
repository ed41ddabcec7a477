package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
)

const billIDPrefix = "bill_"

var hundred = decimal.NewFromInt(100)

type productStore interface {
	Load(ctx context.Context) ([]domain.Product, int, error)
	Save(ctx context.Context, products []domain.Product) error
}

type salesStore interface {
	AppendEntry(ctx context.Context, entry domain.LedgerEntry) error
	WriteBill(ctx context.Context, bill domain.Bill) (domain.BillPaths, error)
}

// Service runs the checkout transaction: stock decrement, bill creation
// and ledger append. Confirmation happens before Checkout is called; once
// called, the transaction runs to completion or fails outright with no
// rollback of steps already persisted.
type Service struct {
	products productStore
	sales    salesStore
	logger   *log.Logger
	now      func() time.Time
}

func New(products productStore, sales salesStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		products: products,
		sales:    sales,
		logger:   logger,
		now:      time.Now,
	}
}

// SanitizeDiscount parses a raw percentage. Non-numeric input or a value
// outside [0,100] means no discount, not a failed checkout.
func SanitizeDiscount(raw string) decimal.Decimal {
	pct, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return clampDiscount(pct)
}

func clampDiscount(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Zero
	}
	return pct
}

// Summary carries the totals shown on the confirmation prompt.
type Summary struct {
	Subtotal    decimal.Decimal
	DiscountPct decimal.Decimal
	DiscountAmt decimal.Decimal
	Total       decimal.Decimal
}

// Summarize computes totals for a cart under a discount percentage.
func Summarize(cart *domain.Cart, pct decimal.Decimal) Summary {
	pct = clampDiscount(pct)
	subtotal := cart.Subtotal()
	discount := subtotal.Mul(pct).Div(hundred)
	return Summary{
		Subtotal:    subtotal,
		DiscountPct: pct,
		DiscountAmt: discount,
		Total:       subtotal.Sub(discount),
	}
}

// Checkout commits the cart: decrements stock (clamped at zero), writes
// the bill artifacts and appends the ledger entry. Stock is matched
// against a freshly loaded catalog, not the snapshot taken at add time,
// and quantities are not re-validated; a confirmed checkout always
// completes unless persistence itself fails.
func (s *Service) Checkout(ctx context.Context, cart *domain.Cart, pct decimal.Decimal) (*domain.Bill, domain.BillPaths, error) {
	if cart.IsEmpty() {
		return nil, domain.BillPaths{}, domain.ErrEmptyCart
	}

	products, _, err := s.products.Load(ctx)
	if err != nil {
		return nil, domain.BillPaths{}, fmt.Errorf("load products: %w", err)
	}
	for _, li := range cart.Lines {
		p := productrepo.FindByID(products, li.ProductID)
		if p == nil {
			continue
		}
		p.Stock -= li.Quantity
		if p.Stock < 0 {
			p.Stock = 0
		}
	}
	if err := s.products.Save(ctx, products); err != nil {
		return nil, domain.BillPaths{}, fmt.Errorf("save stock: %w", err)
	}

	now := s.now()
	sum := Summarize(cart, pct)
	bill := domain.Bill{
		ID:          newBillID(now),
		CreatedAt:   now,
		Lines:       append([]domain.LineItem(nil), cart.Lines...),
		Subtotal:    sum.Subtotal,
		DiscountPct: sum.DiscountPct,
		DiscountAmt: sum.DiscountAmt,
		Total:       sum.Total,
	}

	paths, err := s.sales.WriteBill(ctx, bill)
	if err != nil {
		return nil, domain.BillPaths{}, fmt.Errorf("write bill %s: %w", bill.ID, err)
	}
	entry := domain.LedgerEntry{
		BillID:      bill.ID,
		CreatedAt:   bill.CreatedAt,
		Subtotal:    bill.Subtotal,
		DiscountPct: bill.DiscountPct,
		Total:       bill.Total,
	}
	if err := s.sales.AppendEntry(ctx, entry); err != nil {
		return nil, domain.BillPaths{}, fmt.Errorf("append ledger %s: %w", bill.ID, err)
	}

	s.logger.Printf("checkout: completed bill_id=%s lines=%d total=%s", bill.ID, len(bill.Lines), bill.Total.StringFixed(2))
	return &bill, paths, nil
}

// newBillID keeps ids ordered by wall clock via the timestamp prefix; the
// uuid fragment disambiguates checkouts within the same second.
func newBillID(ts time.Time) string {
	return billIDPrefix + ts.Format("20060102150405") + "_" + uuid.NewString()[:8]
}
