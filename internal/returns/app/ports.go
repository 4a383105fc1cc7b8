package app

import (
	"context"

	order "github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/returns/domain"
)

type ReturnRepo interface {
	Create(ctx context.Context, r domain.Return) (domain.Return, error)
	Get(ctx context.Context, id string) (domain.Return, error)
	List(ctx context.Context) ([]domain.Return, error)
	Update(ctx context.Context, id string, fn func(*domain.Return) error) (domain.Return, error)
}

type OrderReader interface {
	GetOrder(ctx context.Context, id string) (order.Order, error)
}
