package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	"github.com/shopspring/decimal"
)

type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	seq    int
}

func NewOrderRepo(seed []domain.Order) *OrderRepo {
	r := &OrderRepo{orders: make(map[string]domain.Order, len(seed))}
	for _, o := range seed {
		r.orders[o.ID] = cloneOrder(o)
		var n int
		if _, err := fmt.Sscanf(o.ID, "ORD%d", &n); err == nil && n > r.seq {
			r.seq = n
		}
	}
	return r
}

func cloneOrder(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	o.Payments = append([]billing.PaymentReceipt(nil), o.Payments...)
	return o
}

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	order.ID = fmt.Sprintf("ORD%03d", r.seq)
	r.orders[order.ID] = cloneOrder(order)
	return cloneOrder(order), nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %s", app.ErrNotFound, id)
	}
	return cloneOrder(o), nil
}

// List orders newest first, then by id descending.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *OrderRepo) Update(ctx context.Context, id string, fn func(*domain.Order) error) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: %s", app.ErrNotFound, id)
	}

	updated := cloneOrder(o)
	if err := fn(&updated); err != nil {
		return domain.Order{}, err
	}
	r.orders[id] = updated
	return cloneOrder(updated), nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func item(id int64, name string, qty int, price int64) domain.OrderItem {
	return domain.OrderItem{ProductID: id, Name: name, Quantity: qty, Price: decimal.NewFromInt(price)}
}

// SampleOrders mirrors the orders shown on a fresh dashboard.
func SampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "ORD001", Customer: "Rajesh Kumar", Date: day("2024-01-15"),
			Total: decimal.NewFromInt(2340), Paid: decimal.NewFromInt(2340),
			Status: domain.StatusDelivered, Delivery: domain.DeliveryDelivered,
			Items: []domain.OrderItem{
				item(1, "Tata Salt", 5, 25),
				item(2, "Basmati Rice", 10, 180),
				item(4, "Turmeric Powder", 3, 45),
			},
		},
		{
			ID: "ORD002", Customer: "Priya Sharma", Date: day("2024-01-14"),
			Total: decimal.NewFromInt(1890), Paid: decimal.NewFromInt(1000),
			Status: domain.StatusPending, Delivery: domain.DeliveryPending,
			Items: []domain.OrderItem{
				item(3, "Mustard Oil", 8, 120),
				item(5, "Red Chili Powder", 5, 60),
			},
		},
		{
			ID: "ORD003", Customer: "Amit Singh", Date: day("2024-01-14"),
			Total: decimal.NewFromInt(3200), Paid: decimal.NewFromInt(3200),
			Status: domain.StatusProcessing, Delivery: domain.DeliveryShipped,
			Items: []domain.OrderItem{
				item(6, "Wheat Flour", 20, 85),
				item(7, "Coconut Oil", 8, 200),
			},
		},
		{
			ID: "ORD004", Customer: "Sunita Devi", Date: day("2024-01-13"),
			Total: decimal.NewFromInt(1560), Paid: decimal.NewFromInt(1560),
			Status: domain.StatusDelivered, Delivery: domain.DeliveryDelivered,
			Items: []domain.OrderItem{
				item(8, "Biscuits", 12, 30),
				item(1, "Tata Salt", 10, 25),
			},
		},
	}
}
