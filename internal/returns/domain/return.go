package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusApproved, StatusRejected}
}

// Open returns are still waiting on a decision.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusProcessing
}

type Reason string

const (
	ReasonDefective   Reason = "defective"
	ReasonWrongItem   Reason = "wrong_item"
	ReasonNotRequired Reason = "not_required"
	ReasonDamaged     Reason = "damaged"
)

func Reasons() []Reason {
	return []Reason{ReasonDefective, ReasonWrongItem, ReasonNotRequired, ReasonDamaged}
}

func ParseReason(s string) (Reason, bool) {
	for _, r := range Reasons() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

type Item struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Reason   Reason
}

type Return struct {
	ID           string
	OrderID      string
	Customer     string
	Date         time.Time
	Items        []Item
	Amount       decimal.Decimal
	Status       Status
	Note         string
	RejectReason string
}

// LineRequest is one row of the return form. Rows with zero quantity or no reason are ignored.
type LineRequest struct {
	Name     string
	Quantity int
	Reason   string
}
