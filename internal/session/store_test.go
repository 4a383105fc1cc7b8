package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newStore(t *testing.T, ttl time.Duration) (*Store, *clock) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	clk := &clock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	s := NewStore(Options{TTL: ttl, HistoryLimit: 5, IDs: node})
	s.now = clk.now
	return s, clk
}

func TestCreate(t *testing.T) {
	s, _ := newStore(t, time.Hour)

	sess := s.Create(i18n.Hindi)
	if sess.Language != i18n.Hindi || sess.Cart.Len() != 0 || sess.Ledger.Len() != 0 {
		t.Fatalf("got %+v", sess)
	}

	other := s.Create("fr")
	if other.Language != i18n.English {
		t.Fatalf("unknown language should fall back to English, got %q", other.Language)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", s.Len())
	}
}

func TestDo(t *testing.T) {
	t.Run("missing session", func(t *testing.T) {
		s, _ := newStore(t, time.Hour)
		err := s.Do(uuid.New(), func(*Session) error { return nil })
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("state survives between calls", func(t *testing.T) {
		s, _ := newStore(t, time.Hour)
		id := s.Create(i18n.English).ID

		_ = s.Do(id, func(sess *Session) error {
			_, err := sess.Ledger.AppendEntry("Rent", decimal.NewFromInt(500))
			return err
		})
		var total decimal.Decimal
		_ = s.Do(id, func(sess *Session) error {
			total = sess.Ledger.Total()
			return nil
		})
		if !total.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("expected 500, got %s", total)
		}
	})

	t.Run("error from fn is returned", func(t *testing.T) {
		s, _ := newStore(t, time.Hour)
		id := s.Create(i18n.English).ID
		boom := errors.New("boom")
		if err := s.Do(id, func(*Session) error { return boom }); err != boom {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		s, clk := newStore(t, time.Hour)
		id := s.Create(i18n.English).ID
		clk.advance(2 * time.Hour)
		if err := s.Do(id, func(*Session) error { return nil }); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCloseAndSweep(t *testing.T) {
	s, clk := newStore(t, time.Hour)
	idle := s.Create(i18n.English).ID
	active := s.Create(i18n.English).ID
	closed := s.Create(i18n.English).ID

	if err := s.Close(closed); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(closed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second close: expected ErrNotFound, got %v", err)
	}

	clk.advance(40 * time.Minute)
	_ = s.Do(active, func(*Session) error { return nil })
	clk.advance(30 * time.Minute)

	if n := s.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept, got %d", n)
	}
	if err := s.Do(idle, func(*Session) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("idle session should be gone, got %v", err)
	}
	if err := s.Do(active, func(*Session) error { return nil }); err != nil {
		t.Fatalf("active session: %v", err)
	}
}

func TestDo_SerializesConcurrentCalls(t *testing.T) {
	s, _ := newStore(t, time.Hour)
	id := s.Create(i18n.English).ID
	salt := catalog.Product{ID: 1, Name: "Tata Salt", UnitPrice: decimal.NewFromInt(25), Stock: 50}

	const workers = 50
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return s.Do(id, func(sess *Session) error {
				return sess.Cart.AddOrIncrement(salt, catalog.PricingUnit)
			})
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var qty int
	_ = s.Do(id, func(sess *Session) error {
		qty = sess.Cart.ItemCount()
		return nil
	})
	if qty != workers {
		t.Fatalf("expected %d, got %d", workers, qty)
	}
}
