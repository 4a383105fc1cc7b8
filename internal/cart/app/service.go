package app

import (
	"context"
	"errors"
	"fmt"

	catalogapp "github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"

	"github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Service struct {
	catalog CatalogReader
}

func NewService(catalog CatalogReader) *Service {
	return &Service{
		catalog: catalog,
	}
}

func (s *Service) AddItem(ctx context.Context, cart *domain.Cart, productID int64, mode catalog.PricingMode) error {
	parsed, ok := catalog.ParsePricingMode(string(mode))
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPricingMode, mode)
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
			return fmt.Errorf("%w: %d", ErrProductNotFound, productID)
		}
		return err
	}

	return cart.AddOrIncrement(product, parsed)
}

func (s *Service) SetItemQuantity(cart *domain.Cart, productID int64, mode catalog.PricingMode, quantity int) error {
	return cart.SetQuantity(domain.LineKey{ProductID: productID, Mode: mode}, quantity)
}

func (s *Service) RemoveItem(cart *domain.Cart, productID int64, mode catalog.PricingMode) {
	cart.Remove(domain.LineKey{ProductID: productID, Mode: mode})
}

func (s *Service) ClearCart(cart *domain.Cart) {
	cart.Clear()
}

func (s *Service) Subtotal(cart *domain.Cart) decimal.Decimal {
	return cart.Subtotal()
}
