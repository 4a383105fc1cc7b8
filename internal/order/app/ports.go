package app

import (
	"context"

	"github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id string, fn func(*domain.Order) error) (domain.Order, error)
}
