package sales

import (
	"context"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
)

// Store persists completed checkouts: the shared append-only ledger and
// the per-bill receipt artifacts. The ledger is only ever appended to;
// bill files are only ever created, never overwritten.
type Store interface {
	Init(ctx context.Context) error
	AppendEntry(ctx context.Context, entry domain.LedgerEntry) error
	Entries(ctx context.Context) (entries []domain.LedgerEntry, skipped int, err error)
	WriteBill(ctx context.Context, bill domain.Bill) (domain.BillPaths, error)
}
