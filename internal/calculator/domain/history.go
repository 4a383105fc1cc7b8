package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type IDSource interface {
	Generate() snowflake.ID
}

type CalculationRecord struct {
	ID         snowflake.ID
	Expression string
	Result     decimal.Decimal
	At         time.Time
}

// History is append-only, newest first. Records beyond limit are dropped from the tail.
type History struct {
	ids     IDSource
	limit   int
	records []CalculationRecord
	now     func() time.Time
}

func NewHistory(ids IDSource, limit int) *History {
	return &History{ids: ids, limit: limit, now: time.Now}
}

func (h *History) Add(expr string, result decimal.Decimal) CalculationRecord {
	rec := CalculationRecord{
		ID:         h.ids.Generate(),
		Expression: expr,
		Result:     result,
		At:         h.now(),
	}
	h.records = append([]CalculationRecord{rec}, h.records...)
	if h.limit > 0 && len(h.records) > h.limit {
		h.records = h.records[:h.limit]
	}
	return rec
}

func (h *History) Records() []CalculationRecord {
	out := make([]CalculationRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Len() int {
	return len(h.records)
}
