package sales

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
)

// TimeFormat is how ledger and bill timestamps are written.
const TimeFormat = "2006-01-02 15:04:05"

var ledgerHeader = []string{"bill_id", "datetime", "subtotal", "discount_percent", "total"}

type csvStore struct {
	ledgerPath string
	billsDir   string
	logger     *log.Logger
}

// NewCSV returns a Store writing the ledger at ledgerPath and bill
// artifacts under billsDir.
func NewCSV(ledgerPath, billsDir string, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &csvStore{ledgerPath: ledgerPath, billsDir: billsDir, logger: logger}
}

// Init creates the bills directory and a header-only ledger when missing.
func (s *csvStore) Init(_ context.Context) error {
	if err := os.MkdirAll(s.billsDir, 0o755); err != nil {
		return fmt.Errorf("create bills dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.ledgerPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(s.ledgerPath); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	f, err := os.Create(s.ledgerPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.ledgerPath, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(ledgerHeader); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *csvStore) AppendEntry(_ context.Context, e domain.LedgerEntry) error {
	f, err := os.OpenFile(s.ledgerPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := []string{
		e.BillID,
		e.CreatedAt.Format(TimeFormat),
		e.Subtotal.StringFixed(2),
		e.DiscountPct.StringFixed(2),
		e.Total.StringFixed(2),
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	s.logger.Printf("sales store: appended bill_id=%s total=%s", e.BillID, e.Total.StringFixed(2))
	return nil
}

func (s *csvStore) Entries(_ context.Context) ([]domain.LedgerEntry, int, error) {
	f, err := os.Open(s.ledgerPath)
	if err != nil {
		return nil, 0, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("read ledger header: %w", err)
	}

	var (
		entries []domain.LedgerEntry
		skipped int
	)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return entries, skipped, fmt.Errorf("read ledger row: %w", err)
		}
		e, ok := parseEntry(record)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if skipped > 0 {
		s.logger.Printf("sales store: scan count=%d skipped=%d", len(entries), skipped)
	}
	return entries, skipped, nil
}

// WriteBill creates the two receipt renditions. Both files are opened
// create-new; an existing path is an error, never an overwrite.
func (s *csvStore) WriteBill(_ context.Context, b domain.Bill) (domain.BillPaths, error) {
	paths := domain.BillPaths{
		Text: filepath.Join(s.billsDir, b.ID+".txt"),
		CSV:  filepath.Join(s.billsDir, b.ID+".csv"),
	}
	if err := s.writeTextBill(paths.Text, b); err != nil {
		return domain.BillPaths{}, err
	}
	if err := s.writeCSVBill(paths.CSV, b); err != nil {
		return domain.BillPaths{}, err
	}
	s.logger.Printf("sales store: wrote bill_id=%s lines=%d", b.ID, len(b.Lines))
	return paths, nil
}

func (s *csvStore) writeTextBill(path string, b domain.Bill) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create bill text: %w", err)
	}
	defer f.Close()

	ts := b.CreatedAt.Format(TimeFormat)
	fmt.Fprintf(f, "=== BILL ===\n")
	fmt.Fprintf(f, "Bill ID: %s\n", b.ID)
	fmt.Fprintf(f, "DateTime: %s\n\n", ts)
	fmt.Fprintf(f, "%-6s %-30s %10s %6s %12s\n", "PID", "Name", "UnitPrice", "Qty", "LineTotal")
	for _, li := range b.Lines {
		fmt.Fprintf(f, "%-6d %-30s %10s %6d %12s\n",
			li.ProductID, li.Name, domain.Currency(li.UnitPrice), li.Quantity, domain.Currency(li.LineTotal()))
	}
	fmt.Fprintf(f, "\n")
	fmt.Fprintf(f, "Subtotal: %s\n", domain.Currency(b.Subtotal))
	fmt.Fprintf(f, "Discount (%s%%): %s\n", b.DiscountPct.String(), domain.Currency(b.DiscountAmt))
	fmt.Fprintf(f, "Total: %s\n", domain.Currency(b.Total))
	fmt.Fprintf(f, "Thank you!\n")
	return nil
}

func (s *csvStore) writeCSVBill(path string, b domain.Bill) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create bill csv: %w", err)
	}
	defer f.Close()

	ts := b.CreatedAt.Format(TimeFormat)
	w := csv.NewWriter(f)
	if err := w.Write([]string{"bill_id", "datetime", "product_id", "name", "unit_price", "qty", "line_total"}); err != nil {
		return err
	}
	for _, li := range b.Lines {
		record := []string{
			b.ID,
			ts,
			fmt.Sprintf("%d", li.ProductID),
			li.Name,
			li.UnitPrice.StringFixed(2),
			fmt.Sprintf("%d", li.Quantity),
			li.LineTotal().StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write bill line: %w", err)
		}
	}
	// blank separator, then the three summary rows
	if err := w.Write([]string{""}); err != nil {
		return err
	}
	summaries := [][]string{
		{"", "", "", "SUBTOTAL", b.Subtotal.StringFixed(2)},
		{"", "", "", fmt.Sprintf("DISCOUNT_%s%%", b.DiscountPct.String()), b.DiscountAmt.StringFixed(2)},
		{"", "", "", "TOTAL", b.Total.StringFixed(2)},
	}
	for _, row := range summaries {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush bill csv: %w", err)
	}
	return nil
}

// parseEntry maps one ledger row. Rows with a missing bill id or an
// unparseable timestamp or amount are reported as not-ok.
func parseEntry(record []string) (domain.LedgerEntry, bool) {
	if len(record) < 5 || record[0] == "" {
		return domain.LedgerEntry{}, false
	}
	ts, err := time.Parse(TimeFormat, record[1])
	if err != nil {
		return domain.LedgerEntry{}, false
	}
	subtotal, err := decimal.NewFromString(record[2])
	if err != nil {
		return domain.LedgerEntry{}, false
	}
	pct, err := decimal.NewFromString(record[3])
	if err != nil {
		return domain.LedgerEntry{}, false
	}
	total, err := decimal.NewFromString(record[4])
	if err != nil {
		return domain.LedgerEntry{}, false
	}
	return domain.LedgerEntry{
		BillID:      record[0],
		CreatedAt:   ts,
		Subtotal:    subtotal,
		DiscountPct: pct,
		Total:       total,
	}, true
}
