package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID int64) (catalog.Product, error) {
	return r.svc.GetProduct(ctx, productID)
}
