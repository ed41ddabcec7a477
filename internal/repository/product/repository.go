package product

import (
	"context"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
)

// Store is the persisted product collection. Load returns the whole
// collection along with the number of malformed rows it skipped; Save
// replaces the whole collection. There are no partial updates.
type Store interface {
	Init(ctx context.Context) error
	Load(ctx context.Context) (products []domain.Product, skipped int, err error)
	Save(ctx context.Context, products []domain.Product) error
}

// NextID returns the id for a new product: max existing id + 1, or 1 for
// an empty collection. Ids are never reused after deletion.
func NextID(products []domain.Product) int {
	next := 1
	for _, p := range products {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

// FindByID returns the product with the given id, or nil.
func FindByID(products []domain.Product, id int) *domain.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
