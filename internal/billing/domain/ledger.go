package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var ErrInvalidEntry = errors.New("invalid billing entry")

type IDSource interface {
	Generate() snowflake.ID
}

type BillingEntry struct {
	ID          snowflake.ID
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// Ledger holds ad-hoc billable entries in insertion order. Entries are never
// edited; the only removal is Clear.
type Ledger struct {
	ids     IDSource
	entries []BillingEntry
	now     func() time.Time
}

func NewLedger(ids IDSource) *Ledger {
	return &Ledger{ids: ids, now: time.Now}
}

func (l *Ledger) AppendEntry(description string, amount decimal.Decimal) (BillingEntry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return BillingEntry{}, fmt.Errorf("%w: description is required", ErrInvalidEntry)
	}
	if amount.IsNegative() {
		return BillingEntry{}, fmt.Errorf("%w: amount %s is negative", ErrInvalidEntry, amount)
	}

	e := BillingEntry{
		ID:          l.ids.Generate(),
		Description: description,
		Amount:      amount,
		CreatedAt:   l.now(),
	}
	l.entries = append(l.entries, e)
	return e, nil
}

// ParseAmount accepts a plain decimal number, as typed into a form.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errors.New("amount is required")
	}
	return decimal.NewFromString(s)
}

func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Amount)
	}
	return total
}

func (l *Ledger) Entries() []BillingEntry {
	out := make([]BillingEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) Clear() {
	l.entries = nil
}
