package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dwikikusuma/vendor-dashboard/internal/returns/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/returns/domain"
	"github.com/shopspring/decimal"
)

type ReturnRepo struct {
	mu      sync.RWMutex
	returns map[string]domain.Return
	seq     int
}

func NewReturnRepo(seed []domain.Return) *ReturnRepo {
	r := &ReturnRepo{returns: make(map[string]domain.Return, len(seed))}
	for _, ret := range seed {
		r.returns[ret.ID] = cloneReturn(ret)
		var n int
		if _, err := fmt.Sscanf(ret.ID, "RET%d", &n); err == nil && n > r.seq {
			r.seq = n
		}
	}
	return r
}

func cloneReturn(r domain.Return) domain.Return {
	r.Items = append([]domain.Item(nil), r.Items...)
	return r
}

func (r *ReturnRepo) Create(ctx context.Context, ret domain.Return) (domain.Return, error) {
	if err := ctx.Err(); err != nil {
		return domain.Return{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	ret.ID = fmt.Sprintf("RET%03d", r.seq)
	r.returns[ret.ID] = cloneReturn(ret)
	return cloneReturn(ret), nil
}

func (r *ReturnRepo) Get(ctx context.Context, id string) (domain.Return, error) {
	if err := ctx.Err(); err != nil {
		return domain.Return{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ret, ok := r.returns[id]
	if !ok {
		return domain.Return{}, fmt.Errorf("%w: %s", app.ErrNotFound, id)
	}
	return cloneReturn(ret), nil
}

func (r *ReturnRepo) List(ctx context.Context) ([]domain.Return, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	out := make([]domain.Return, 0, len(r.returns))
	for _, ret := range r.returns {
		out = append(out, cloneReturn(ret))
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

func (r *ReturnRepo) Update(ctx context.Context, id string, fn func(*domain.Return) error) (domain.Return, error) {
	if err := ctx.Err(); err != nil {
		return domain.Return{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ret, ok := r.returns[id]
	if !ok {
		return domain.Return{}, fmt.Errorf("%w: %s", app.ErrNotFound, id)
	}

	updated := cloneReturn(ret)
	if err := fn(&updated); err != nil {
		return domain.Return{}, err
	}
	r.returns[id] = updated
	return cloneReturn(updated), nil
}

func SampleReturns() []domain.Return {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []domain.Return{
		{
			ID: "RET001", OrderID: "ORD001", Customer: "Rajesh Kumar", Date: day("2024-01-16"),
			Amount: decimal.NewFromInt(50), Status: domain.StatusApproved,
			Items: []domain.Item{{Name: "Tata Salt", Quantity: 2, Price: decimal.NewFromInt(25), Reason: domain.ReasonDefective}},
		},
		{
			ID: "RET002", OrderID: "ORD002", Customer: "Priya Sharma", Date: day("2024-01-15"),
			Amount: decimal.NewFromInt(180), Status: domain.StatusPending,
			Items: []domain.Item{{Name: "Red Chili Powder", Quantity: 3, Price: decimal.NewFromInt(60), Reason: domain.ReasonWrongItem}},
		},
		{
			ID: "RET003", OrderID: "ORD003", Customer: "Amit Singh", Date: day("2024-01-14"),
			Amount: decimal.NewFromInt(400), Status: domain.StatusProcessing,
			Items: []domain.Item{{Name: "Coconut Oil", Quantity: 2, Price: decimal.NewFromInt(200), Reason: domain.ReasonDamaged}},
		},
	}
}
