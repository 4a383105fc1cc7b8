package session

import (
	"sync"
	"time"

	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	calc "github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	cart "github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/google/uuid"
)

// Session owns the per-user state of one dashboard visit. Fields other than
// ID and CreatedAt must only be touched through Store.Do.
type Session struct {
	mu sync.Mutex

	ID        uuid.UUID
	Language  i18n.Language
	Cart      *cart.Cart
	Ledger    *billing.Ledger
	Pad       *calc.Pad
	History   *calc.History
	CreatedAt time.Time
	LastSeen  time.Time
}
