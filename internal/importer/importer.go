package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
)

type productStore interface {
	Load(ctx context.Context) ([]domain.Product, int, error)
	Save(ctx context.Context, products []domain.Product) error
}

// CSVImporter reads a supplier restock CSV (columns name,price,stock) and
// merges it into the product store.
type CSVImporter struct {
	reader *csv.Reader
	store  productStore
	logger *log.Logger
}

func NewCSVImporter(r io.Reader, store productStore, logger *log.Logger) *CSVImporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	return &CSVImporter{reader: csvr, store: store, logger: logger}
}

// Result counts what Run did with the supplier rows.
type Result struct {
	Created int
	Merged  int
	Skipped int
}

// Run parses supplier rows and applies them: a row whose name matches an
// existing product (case-insensitive) adds to its stock and refreshes its
// price, anything else becomes a new product. Malformed rows are skipped
// and counted. The store is rewritten once, at the end.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	products, _, err := i.store.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load products: %w", err)
	}
	byName := make(map[string]int, len(products))
	for idx, p := range products {
		byName[strings.ToLower(p.Name)] = idx
	}

	var res Result
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}
		row, ok := parseRow(record, index)
		if !ok {
			res.Skipped++
			continue
		}
		if idx, exists := byName[strings.ToLower(row.Name)]; exists {
			products[idx].Stock += row.Stock
			products[idx].Price = row.Price
			res.Merged++
			continue
		}
		row.ID = productrepo.NextID(products)
		products = append(products, row)
		byName[strings.ToLower(row.Name)] = len(products) - 1
		res.Created++
	}

	if err := i.store.Save(ctx, products); err != nil {
		return res, fmt.Errorf("save products: %w", err)
	}
	i.logger.Printf("importer: created=%d merged=%d skipped=%d", res.Created, res.Merged, res.Skipped)
	return res, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.Product, bool) {
	name := strings.TrimSpace(pick(record, index, "name"))
	if name == "" {
		return domain.Product{}, false
	}
	price, err := decimal.NewFromString(pick(record, index, "price"))
	if err != nil || price.IsNegative() {
		return domain.Product{}, false
	}
	stock, err := strconv.Atoi(pick(record, index, "stock"))
	if err != nil || stock < 0 {
		return domain.Product{}, false
	}
	return domain.Product{Name: name, Price: price, Stock: stock}, true
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
