package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	Number   string
	IssuedAt time.Time
	Entries  []BillingEntry
	Total    decimal.Decimal
}
