package app

import (
	"context"

	"github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.Product, error)
}
