package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dwikikusuma/vendor-dashboard/internal/returns/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/returns/domain"
	"github.com/shopspring/decimal"
)

func TestReturnRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create continues the seeded sequence", func(t *testing.T) {
		repo := NewReturnRepo(SampleReturns())
		ret, err := repo.Create(ctx, domain.Return{
			OrderID: "ORD004", Customer: "Sunita Devi", Date: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			Status: domain.StatusPending,
			Items:  []domain.Item{{Name: "Biscuits", Quantity: 2, Price: decimal.NewFromInt(30), Reason: domain.ReasonDamaged}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ret.ID != "RET004" {
			t.Fatalf("expected RET004, got %s", ret.ID)
		}
		got, err := repo.Get(ctx, "RET004")
		if err != nil || got.OrderID != "ORD004" || len(got.Items) != 1 {
			t.Fatalf("got %+v, %v", got, err)
		}
	})

	t.Run("empty repo starts at one", func(t *testing.T) {
		ret, _ := NewReturnRepo(nil).Create(ctx, domain.Return{})
		if ret.ID != "RET001" {
			t.Fatalf("expected RET001, got %s", ret.ID)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NewReturnRepo(SampleReturns()).Get(ctx, "RET404")
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		got, err := NewReturnRepo(SampleReturns()).List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "RET001" || got[1].ID != "RET002" || got[2].ID != "RET003" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("failed update leaves return unchanged", func(t *testing.T) {
		repo := NewReturnRepo(SampleReturns())
		boom := errors.New("boom")
		_, err := repo.Update(ctx, "RET002", func(r *domain.Return) error {
			r.Status = domain.StatusApproved
			r.Items[0].Quantity = 99
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		got, _ := repo.Get(ctx, "RET002")
		if got.Status != domain.StatusPending || got.Items[0].Quantity != 3 {
			t.Fatalf("return changed: %+v", got)
		}
	})

	t.Run("update missing id", func(t *testing.T) {
		_, err := NewReturnRepo(nil).Update(ctx, "RET001", func(*domain.Return) error { return nil })
		if !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("returned values are copies", func(t *testing.T) {
		repo := NewReturnRepo(SampleReturns())
		got, _ := repo.Get(ctx, "RET003")
		got.Items[0].Quantity = 50

		listed, _ := repo.List(ctx)
		listed[2].Items[0].Name = "changed"

		updated, _ := repo.Update(ctx, "RET003", func(r *domain.Return) error {
			r.Status = domain.StatusApproved
			return nil
		})
		updated.Items[0].Reason = domain.ReasonWrongItem

		again, _ := repo.Get(ctx, "RET003")
		it := again.Items[0]
		if it.Quantity != 2 || it.Name != "Coconut Oil" || it.Reason != domain.ReasonDamaged {
			t.Fatalf("stored items changed: %+v", it)
		}
		if again.Status != domain.StatusApproved {
			t.Fatalf("update not stored: %s", again.Status)
		}
	})
}
