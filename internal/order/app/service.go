package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOverpayment       = errors.New("payment exceeds amount due")
)

type Service struct {
	repo OrderRepo
	now  func() time.Time
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	customer := strings.TrimSpace(req.Customer)
	if customer == "" {
		return domain.Order{}, fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: order has no items", ErrInvalidInput)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	total := decimal.Zero

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if item.Price.IsNegative() {
			return domain.Order{}, fmt.Errorf("%w: item %d: price cannot be negative, got %s", ErrInvalidInput, i, item.Price)
		}

		it := domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
		items = append(items, it)
		total = total.Add(it.LineTotal())
	}

	now := s.now()
	order := domain.Order{
		Customer:  customer,
		Date:      now,
		Status:    domain.StatusPending,
		Delivery:  domain.DeliveryPending,
		Total:     total,
		Paid:      decimal.Zero,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Create(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// ListOrders returns orders newest first. An empty status means all.
func (s *Service) ListOrders(ctx context.Context, status string) ([]domain.Order, error) {
	var want domain.Status
	if status = strings.ToLower(strings.TrimSpace(status)); status != "" && status != "all" {
		st, ok := domain.ParseStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
		}
		want = st
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if want == "" || o.Status == want {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Service) AdvanceStatus(ctx context.Context, id string, next domain.Status) (domain.Order, error) {
	return s.repo.Update(ctx, id, func(o *domain.Order) error {
		if !o.Status.CanAdvanceTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
		}
		o.Status = next
		if next == domain.StatusDelivered {
			o.Delivery = domain.DeliveryDelivered
		}
		o.UpdatedAt = s.now()
		return nil
	})
}

// MarkShipped hands a processing order to delivery.
func (s *Service) MarkShipped(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Update(ctx, id, func(o *domain.Order) error {
		if o.Status != domain.StatusProcessing {
			return fmt.Errorf("%w: order is %s, not processing", ErrInvalidTransition, o.Status)
		}
		if o.Delivery != domain.DeliveryPending {
			return fmt.Errorf("%w: delivery is already %s", ErrInvalidTransition, o.Delivery)
		}
		o.Delivery = domain.DeliveryShipped
		o.UpdatedAt = s.now()
		return nil
	})
}

// ConfirmDelivery is the vendor's acknowledgement that a shipped order arrived.
func (s *Service) ConfirmDelivery(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.Update(ctx, id, func(o *domain.Order) error {
		if o.Delivery != domain.DeliveryShipped {
			return fmt.Errorf("%w: delivery is %s, not shipped", ErrInvalidTransition, o.Delivery)
		}
		o.Delivery = domain.DeliveryDelivered
		o.Status = domain.StatusDelivered
		o.UpdatedAt = s.now()
		return nil
	})
}

// RecordPayment settles part or all of an order's due amount. Form input is
// validated like any other payment; paying more than is due is refused.
func (s *Service) RecordPayment(ctx context.Context, id, amount, method string) (domain.Order, billing.PaymentReceipt, error) {
	receipt, err := billing.RecordPayment(amount, method, s.now())
	if err != nil {
		return domain.Order{}, billing.PaymentReceipt{}, err
	}

	o, err := s.repo.Update(ctx, id, func(o *domain.Order) error {
		if due := o.Due(); receipt.Amount.GreaterThan(due) {
			return fmt.Errorf("%w: %s paid, %s due on %s", ErrOverpayment, receipt.Amount, due, o.ID)
		}
		o.Paid = o.Paid.Add(receipt.Amount)
		o.Payments = append(o.Payments, receipt)
		o.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return domain.Order{}, billing.PaymentReceipt{}, err
	}
	return o, receipt, nil
}

// ListPayments returns every payment recorded against an order, newest first.
func (s *Service) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Payment
	for _, o := range orders {
		for _, r := range o.Payments {
			out = append(out, domain.Payment{OrderID: o.ID, Customer: o.Customer, Receipt: r})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Receipt.At.After(out[j].Receipt.At)
	})
	return out, nil
}

func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	sum := domain.Summary{TotalSales: decimal.Zero, OutstandingDues: decimal.Zero}
	for _, o := range orders {
		sum.TotalSales = sum.TotalSales.Add(o.Paid)
		sum.OutstandingDues = sum.OutstandingDues.Add(o.Due())
		switch o.Status {
		case domain.StatusPending:
			sum.PendingOrders++
		case domain.StatusProcessing:
			sum.ProcessingOrders++
		case domain.StatusDelivered:
			sum.CompletedOrders++
		}
	}
	return sum, nil
}
