package catalog

import (
	"context"
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

// Service implements product management. Every mutation loads the full
// collection, changes it in memory and rewrites the file.
type Service struct {
	store  productStore
	logger *log.Logger
}

func New(store productStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, _, err := s.store.Load(ctx)
	return products, err
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	products, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := productrepo.FindByID(products, id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	found := *p
	return &found, nil
}

// Add creates a product with the next free id.
func (s *Service) Add(ctx context.Context, name string, price decimal.Decimal, stock int) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidInput)
	}
	products, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	p := domain.Product{
		ID:    productrepo.NextID(products),
		Name:  name,
		Price: price,
		Stock: stock,
	}
	products = append(products, p)
	if err := s.store.Save(ctx, products); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}
	s.logger.Printf("catalog: added id=%d name=%q", p.ID, p.Name)
	return &p, nil
}

// UpdateInput carries the fields to change; nil means keep current value.
type UpdateInput struct {
	Name  *string
	Price *decimal.Decimal
	Stock *int
}

func (s *Service) Update(ctx context.Context, id int, in UpdateInput) (*domain.Product, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalidInput)
	}
	products, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	p := productrepo.FindByID(products, id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if err := s.store.Save(ctx, products); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}
	updated := *p
	s.logger.Printf("catalog: updated id=%d", id)
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	products, _, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return domain.ErrNotFound
	}
	if err := s.store.Save(ctx, kept); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	s.logger.Printf("catalog: deleted id=%d", id)
	return nil
}

// Search matches by id when the query is all digits, otherwise by
// case-insensitive substring on the name.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search", domain.ErrInvalidInput)
	}
	products, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if isDigits(query) {
		id, err := strconv.Atoi(query)
		if err != nil {
			return nil, nil
		}
		if p := productrepo.FindByID(products, id); p != nil {
			return []domain.Product{*p}, nil
		}
		return nil, nil
	}
	needle := strings.ToLower(query)
	var results []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			results = append(results, p)
		}
	}
	return results, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
