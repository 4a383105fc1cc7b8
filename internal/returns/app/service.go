package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	order "github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/returns/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("return not found")
	ErrNotEligible       = errors.New("order is not eligible for return")
	ErrNoItems           = errors.New("no items selected for return")
	ErrInvalidQuantity   = errors.New("invalid return quantity")
	ErrInvalidTransition = errors.New("return already decided")
)

type Service struct {
	repo   ReturnRepo
	orders OrderReader
	now    func() time.Time
}

func NewService(repo ReturnRepo, orders OrderReader) *Service {
	return &Service{repo: repo, orders: orders, now: time.Now}
}

// Initiate raises a return against a delivered order. Quantities are checked
// per item name against what was ordered, less what earlier returns that were
// not rejected already claim.
func (s *Service) Initiate(ctx context.Context, orderID string, lines []domain.LineRequest, note string) (domain.Return, error) {
	o, err := s.orders.GetOrder(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return domain.Return{}, err
	}
	if o.Status != order.StatusDelivered {
		return domain.Return{}, fmt.Errorf("%w: order %s is %s", ErrNotEligible, o.ID, o.Status)
	}

	ordered := make(map[string]order.OrderItem, len(o.Items))
	for _, it := range o.Items {
		if prev, ok := ordered[it.Name]; ok {
			it.Quantity += prev.Quantity
		}
		ordered[it.Name] = it
	}

	requested, err := s.claimed(ctx, o.ID)
	if err != nil {
		return domain.Return{}, err
	}
	var items []domain.Item
	amount := decimal.Zero

	for _, l := range lines {
		reason, ok := domain.ParseReason(strings.TrimSpace(l.Reason))
		if l.Quantity == 0 || !ok {
			continue
		}
		if l.Quantity < 0 {
			return domain.Return{}, fmt.Errorf("%w: %s: %d", ErrInvalidQuantity, l.Name, l.Quantity)
		}

		src, ok := ordered[l.Name]
		if !ok {
			return domain.Return{}, fmt.Errorf("%w: %s was not in order %s", ErrInvalidQuantity, l.Name, o.ID)
		}
		requested[l.Name] += l.Quantity
		if requested[l.Name] > src.Quantity {
			return domain.Return{}, fmt.Errorf("%w: %s: %d returned exceeds ordered %d", ErrInvalidQuantity, l.Name, requested[l.Name], src.Quantity)
		}

		it := domain.Item{Name: l.Name, Quantity: l.Quantity, Price: src.Price, Reason: reason}
		items = append(items, it)
		amount = amount.Add(src.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if len(items) == 0 {
		return domain.Return{}, ErrNoItems
	}

	return s.repo.Create(ctx, domain.Return{
		OrderID:  o.ID,
		Customer: o.Customer,
		Date:     s.now(),
		Items:    items,
		Amount:   amount,
		Status:   domain.StatusPending,
		Note:     strings.TrimSpace(note),
	})
}

// claimed sums item quantities already under return for an order.
func (s *Service) claimed(ctx context.Context, orderID string) (map[string]int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int)
	for _, r := range all {
		if r.OrderID != orderID || r.Status == domain.StatusRejected {
			continue
		}
		for _, it := range r.Items {
			out[it.Name] += it.Quantity
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Return, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Return, error) {
	return s.repo.List(ctx)
}

func (s *Service) Pending(ctx context.Context) ([]domain.Return, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Return, 0, len(all))
	for _, r := range all {
		if r.Status.Open() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) Approve(ctx context.Context, id string) (domain.Return, error) {
	return s.repo.Update(ctx, id, func(r *domain.Return) error {
		if !r.Status.Open() {
			return fmt.Errorf("%w: %s is %s", ErrInvalidTransition, r.ID, r.Status)
		}
		r.Status = domain.StatusApproved
		return nil
	})
}

func (s *Service) Reject(ctx context.Context, id, reason string) (domain.Return, error) {
	return s.repo.Update(ctx, id, func(r *domain.Return) error {
		if !r.Status.Open() {
			return fmt.Errorf("%w: %s is %s", ErrInvalidTransition, r.ID, r.Status)
		}
		r.Status = domain.StatusRejected
		r.RejectReason = strings.TrimSpace(reason)
		return nil
	})
}
