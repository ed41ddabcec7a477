package product

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
)

var header = []string{"id", "name", "price", "stock"}

type csvStore struct {
	path   string
	logger *log.Logger
}

// NewCSV returns a Store backed by a comma-delimited file at path.
func NewCSV(path string, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &csvStore{path: path, logger: logger}
}

// Init creates the data directory and a header-only file when missing.
func (s *csvStore) Init(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *csvStore) Load(_ context.Context) ([]domain.Product, int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	var (
		products []domain.Product
		skipped  int
	)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return products, skipped, fmt.Errorf("read row: %w", err)
		}
		p, ok := parseRecord(record)
		if !ok {
			skipped++
			continue
		}
		products = append(products, p)
	}
	if skipped > 0 {
		s.logger.Printf("product store: load path=%s count=%d skipped=%d", s.path, len(products), skipped)
	}
	return products, skipped, nil
}

// Save rewrites the whole collection, header first. Prices carry two
// decimal places.
func (s *csvStore) Save(_ context.Context, products []domain.Product) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open %s for write: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write product %d: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	s.logger.Printf("product store: saved path=%s count=%d", s.path, len(products))
	return nil
}

// parseRecord maps one row to a product. Rows with a missing or
// non-numeric id, price, or stock are reported as not-ok rather than
// failing the load.
func parseRecord(record []string) (domain.Product, bool) {
	if len(record) < 4 || record[0] == "" {
		return domain.Product{}, false
	}
	id, err := strconv.Atoi(record[0])
	if err != nil {
		return domain.Product{}, false
	}
	price, err := decimal.NewFromString(record[2])
	if err != nil {
		return domain.Product{}, false
	}
	stock, err := strconv.Atoi(record[3])
	if err != nil {
		return domain.Product{}, false
	}
	return domain.Product{ID: id, Name: record[1], Price: price, Stock: stock}, true
}
