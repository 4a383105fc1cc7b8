package adapter

import (
	"context"

	orderapp "github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	order "github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
)

type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) CreateOrder(ctx context.Context, req order.CreateOrderRequest) (order.Order, error) {
	return w.svc.CreateOrder(ctx, req)
}
