package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	calc "github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	cart "github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type IDSource interface {
	Generate() snowflake.ID
}

type Options struct {
	TTL          time.Duration
	HistoryLimit int
	IDs          IDSource
}

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	ttl          time.Duration
	historyLimit int
	ids          IDSource
	now          func() time.Time
}

func NewStore(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = 12 * time.Hour
	}
	return &Store{
		sessions:     make(map[uuid.UUID]*Session),
		ttl:          opts.TTL,
		historyLimit: opts.HistoryLimit,
		ids:          opts.IDs,
		now:          time.Now,
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Create(lang i18n.Language) *Session {
	if !lang.Valid() {
		lang = i18n.English
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New(),
		Language:  lang,
		Cart:      cart.NewCart(),
		Ledger:    billing.NewLedger(s.ids),
		Pad:       calc.NewPad(),
		History:   calc.NewHistory(s.ids, s.historyLimit),
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *Store) lookup(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Do runs fn with exclusive access to the session and marks it as seen.
// Expired sessions are reported as missing even before the sweeper drops them.
func (s *Store) Do(id uuid.UUID, fn func(*Session) error) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.now()
	if now.Sub(sess.LastSeen) > s.ttl {
		return ErrNotFound
	}
	sess.LastSeen = now

	return fn(sess)
}

func (s *Store) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how many went.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.LastSeen)
		sess.mu.Unlock()

		if idle > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper blocks until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				slog.Info("expired sessions swept", "count", n, "active", s.Len())
			}
		}
	}
}
