package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is the immutable artifact produced by a completed checkout. It is
// written once (text and CSV renditions) and never modified.
type Bill struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"createdAt"`
	Lines       []LineItem      `json:"lineItems"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DiscountPct decimal.Decimal `json:"discountPercent"`
	DiscountAmt decimal.Decimal `json:"discountAmount"`
	Total       decimal.Decimal `json:"total"`
}

// BillPaths reports where the two bill renditions were written.
type BillPaths struct {
	Text string
	CSV  string
}

// LedgerEntry is one append-only row in the sales ledger, recorded per
// completed checkout.
type LedgerEntry struct {
	BillID      string          `json:"billId"`
	CreatedAt   time.Time       `json:"createdAt"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DiscountPct decimal.Decimal `json:"discountPercent"`
	Total       decimal.Decimal `json:"total"`
}
