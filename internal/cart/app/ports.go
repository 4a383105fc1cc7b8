package app

import (
	"context"

	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
)

type CatalogReader interface {
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
}
