package seed

import (
	"context"
	"testing"

	"github.com/smart-kishor24/Inventory-Management-Billing-System/internal/domain"
)

type stubStore struct {
	products []domain.Product
	saves    int
}

func (s *stubStore) Load(_ context.Context) ([]domain.Product, int, error) {
	return append([]domain.Product(nil), s.products...), 0, nil
}

func (s *stubStore) Save(_ context.Context, products []domain.Product) error {
	s.products = products
	s.saves++
	return nil
}

func TestApply(t *testing.T) {
	store := &stubStore{}
	added, err := Apply(context.Background(), store)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if added != len(demo) {
		t.Fatalf("expected %d added, got %d", len(demo), added)
	}
	if len(store.products) != len(demo) {
		t.Fatalf("expected %d products, got %d", len(demo), len(store.products))
	}
	ids := map[int]bool{}
	for _, p := range store.products {
		if ids[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		ids[p.ID] = true
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	store := &stubStore{}
	if _, err := Apply(context.Background(), store); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	added, err := Apply(context.Background(), store)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if added != 0 {
		t.Fatalf("expected nothing added on second apply, got %d", added)
	}
	if store.saves != 1 {
		t.Fatalf("second apply must not rewrite the file")
	}
}
