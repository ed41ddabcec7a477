package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
	productrepo "github.com/smart-kishor24/Inventory-Management-Billing-System/internal/repository/product"
)

type productStore interface {
	Load(ctx context.Context) ([]domain.Product, int, error)
}

// Service holds the cart for one interactive session. Adds validate
// against the live product store; name and unit price are snapshotted at
// first add and kept even if the catalog changes afterward.
type Service struct {
	store productStore
	cart  domain.Cart
}

func New(store productStore) *Service {
	return &Service{store: store}
}

// AddItem validates productID/qty against current stock and adds the
// quantity to the cart. A repeat add for the same product merges into the
// existing line; the merged total is not re-checked against stock.
func (s *Service) AddItem(ctx context.Context, productID, qty int) (domain.LineItem, error) {
	if qty <= 0 {
		return domain.LineItem{}, domain.ErrInvalidQuantity
	}
	products, _, err := s.store.Load(ctx)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("load products: %w", err)
	}
	p := productrepo.FindByID(products, productID)
	if p == nil {
		return domain.LineItem{}, domain.ErrNotFound
	}
	if qty > p.Stock {
		return domain.LineItem{}, fmt.Errorf("%w: available %d", domain.ErrInsufficientStock, p.Stock)
	}
	if line := s.cart.Find(productID); line != nil {
		line.Quantity += qty
		return *line, nil
	}
	line := domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
	}
	s.cart.Lines = append(s.cart.Lines, line)
	return line, nil
}

// RemoveItem drops the line item for productID.
func (s *Service) RemoveItem(productID int) error {
	for i := range s.cart.Lines {
		if s.cart.Lines[i].ProductID == productID {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrCartItemNotFound
}

func (s *Service) Items() []domain.LineItem {
	return s.cart.Lines
}

func (s *Service) Subtotal() decimal.Decimal {
	return s.cart.Subtotal()
}

func (s *Service) IsEmpty() bool {
	return s.cart.IsEmpty()
}

// Cart exposes the underlying cart for checkout.
func (s *Service) Cart() *domain.Cart {
	return &s.cart
}

// Clear discards all line items, used after a completed checkout.
func (s *Service) Clear() {
	s.cart.Lines = nil
}
