package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// ProductRepo is read-only after construction, so it needs no locking.
type ProductRepo struct {
	byID map[int64]domain.Product
	ids  []int64
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	r := &ProductRepo{byID: make(map[int64]domain.Product, len(products))}
	for _, p := range products {
		if _, dup := r.byID[p.ID]; !dup {
			r.ids = append(r.ids, p.ID)
		}
		r.byID[p.ID] = p
	}
	sort.Slice(r.ids, func(i, j int) bool { return r.ids[i] < r.ids[j] })
	return r
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}

	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]domain.Product, 0, len(r.ids))
	for _, id := range r.ids {
		p := r.byID[id]
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// SampleProducts is the catalog the dashboard ships with.
func SampleProducts() []domain.Product {
	const image = "/static/products/placeholder.png"
	p := func(id int64, name string, c domain.Category, unit, box int64, perBox, stock int) domain.Product {
		return domain.Product{
			ID:        id,
			Name:      name,
			Category:  c,
			UnitPrice: decimal.NewFromInt(unit),
			BoxPrice:  decimal.NewFromInt(box),
			QtyPerBox: perBox,
			Stock:     stock,
			Image:     image,
			Active:    true,
		}
	}

	return []domain.Product{
		p(1, "Tata Salt", domain.CategorySpices, 25, 600, 24, 50),
		p(2, "Basmati Rice", domain.CategoryGrains, 180, 4320, 24, 30),
		p(3, "Mustard Oil", domain.CategoryOils, 120, 2400, 20, 25),
		p(4, "Turmeric Powder", domain.CategorySpices, 45, 900, 20, 40),
		p(5, "Red Chili Powder", domain.CategorySpices, 60, 1440, 24, 35),
		p(6, "Wheat Flour", domain.CategoryGrains, 85, 2040, 24, 20),
		p(7, "Coconut Oil", domain.CategoryOils, 200, 4800, 24, 15),
		p(8, "Biscuits", domain.CategorySnacks, 30, 720, 24, 0),
	}
}
