package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cart "github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/checkout/domain"
	order "github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (catalog.Product, error)
}

type OrderWriter interface {
	CreateOrder(ctx context.Context, req order.CreateOrderRequest) (order.Order, error)
}

type Service struct {
	Catalog CatalogReader
	Orders  OrderWriter

	maxConcurrent int
}

func NewService(catalog CatalogReader, orders OrderWriter, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Catalog:       catalog,
		Orders:        orders,
		maxConcurrent: maxConcurrent,
	}
}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Quote prices the cart at its snapshotted amounts and checks current stock.
// Unit and box lines of the same product draw on the same stock.
func (s *Service) Quote(ctx context.Context, c *cart.Cart) (domain.Quote, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	var ids []int64
	seen := make(map[int64]bool, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}

	products := make([]catalog.Product, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range ids {
		idx := idx
		g.Go(func() error {
			p, err := s.Catalog.GetProduct(gctx, ids[idx])
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", ids[idx], err)
			}
			products[idx] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	byID := make(map[int64]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	quote := domain.Quote{Lines: make([]domain.QuoteLine, 0, len(lines)), Total: decimal.Zero}
	units := make(map[int64]int, len(ids))

	for _, l := range lines {
		p := byID[l.ProductID]
		n := p.UnitsFor(l.Mode, l.Quantity)
		units[l.ProductID] += n

		ql := domain.QuoteLine{
			ProductID: l.ProductID,
			Mode:      l.Mode,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Units:     n,
			UnitPrice: l.UnitAmount,
			LineTotal: l.LineTotal(),
		}
		quote.Lines = append(quote.Lines, ql)
		quote.Total = quote.Total.Add(ql.LineTotal)
	}

	for _, id := range ids {
		if need, have := units[id], byID[id].Stock; need > have {
			return domain.Quote{}, fmt.Errorf("%w: %s needs %d units, %d in stock", ErrInsufficientStock, byID[id].Name, need, have)
		}
	}

	return quote, nil
}

// PlaceOrder turns the cart into a pending order and empties it.
// The cart is left untouched when the order cannot be created.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Cart, customer string) (order.Order, error) {
	quote, err := s.Quote(ctx, c)
	if err != nil {
		return order.Order{}, err
	}

	req := order.CreateOrderRequest{
		Customer: strings.TrimSpace(customer),
		Items:    make([]order.OrderItemRequest, 0, len(quote.Lines)),
	}
	for _, l := range quote.Lines {
		name := l.Name
		if l.Mode == catalog.PricingBox {
			name += " (box)"
		}
		req.Items = append(req.Items, order.OrderItemRequest{
			ProductID: l.ProductID,
			Name:      name,
			Price:     l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	created, err := s.Orders.CreateOrder(ctx, req)
	if err != nil {
		return order.Order{}, err
	}

	c.Clear()
	return created, nil
}
