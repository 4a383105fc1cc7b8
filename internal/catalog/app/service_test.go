package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	products   []domain.Product
	lastFilter domain.Filter
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	f.lastFilter = filter
	return f.products, nil
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: []domain.Product{
		{ID: 1, Name: "Tata Salt", Category: domain.CategorySpices, UnitPrice: decimal.NewFromInt(25), Active: true},
		{ID: 2, Name: "Old Stock", Category: domain.CategoryGrains, UnitPrice: decimal.NewFromInt(10), Active: false},
	}}
}

func TestGetProduct(t *testing.T) {
	svc := NewService(newFakeRepo())

	t.Run("non-positive id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 0)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 42)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("inactive -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 2)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("active product", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Tata Salt" {
			t.Fatalf("got %q", p.Name)
		}
	})
}

func TestListProducts(t *testing.T) {
	t.Run("unknown category -> invalid", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.ListProducts(context.Background(), "", "toys")
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("all means no category filter", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo)
		if _, err := svc.ListProducts(context.Background(), "  salt ", "All"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastFilter.Category != "" || repo.lastFilter.Search != "salt" {
			t.Fatalf("got filter %+v", repo.lastFilter)
		}
	})

	t.Run("inactive products are hidden", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		got, err := svc.ListProducts(context.Background(), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("got %+v", got)
		}
	})
}
