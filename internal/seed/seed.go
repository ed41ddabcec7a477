package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
)

type productStore interface {
	Load(ctx context.Context) ([]domain.Product, int, error)
	Save(ctx context.Context, products []domain.Product) error
}

type productSeed struct {
	Name  string
	Price string
	Stock int
}

var demo = []productSeed{
	{Name: "Notebook A5", Price: "49.00", Stock: 120},
	{Name: "Ballpoint Pen", Price: "10.00", Stock: 500},
	{Name: "Stapler", Price: "149.50", Stock: 35},
	{Name: "Printer Paper 500pk", Price: "299.00", Stock: 60},
	{Name: "Desk Lamp", Price: "799.00", Stock: 12},
}

// Apply inserts basic demo products for manual testing. It is idempotent:
// names already in the store are skipped. Returns the number added.
func Apply(ctx context.Context, store productStore) (int, error) {
	products, _, err := store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load products: %w", err)
	}
	existing := make(map[string]bool, len(products))
	for _, p := range products {
		existing[strings.ToLower(p.Name)] = true
	}

	added := 0
	for _, s := range demo {
		if existing[strings.ToLower(s.Name)] {
			continue
		}
		price, err := decimal.NewFromString(s.Price)
		if err != nil {
			return added, fmt.Errorf("seed price %q: %w", s.Price, err)
		}
		products = append(products, domain.Product{
			ID:    productrepo.NextID(products),
			Name:  s.Name,
			Price: price,
			Stock: s.Stock,
		})
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := store.Save(ctx, products); err != nil {
		return 0, fmt.Errorf("save products: %w", err)
	}
	return added, nil
}
