package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if !p.Active {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

// ListProducts matches search text against product names, case-insensitively.
// An empty category or "all" means any category.
func (s *Service) ListProducts(ctx context.Context, search, category string) ([]domain.Product, error) {
	filter := domain.Filter{Search: strings.TrimSpace(search)}

	category = strings.TrimSpace(category)
	if category != "" && !strings.EqualFold(category, "all") {
		c, ok := domain.ParseCategory(category)
		if !ok {
			return nil, ErrInvalidInput
		}
		filter.Category = c
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}
