package domain

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

func TestHistory_NewestFirstAndCapped(t *testing.T) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatal(err)
	}
	h := NewHistory(node, 2)
	fixed := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	first := h.Add("120 * 8", decimal.NewFromInt(960))
	second := h.Add("180 + 45", decimal.NewFromInt(225))
	third := h.Add("25 * 10", decimal.NewFromInt(250))

	if !(first.ID < second.ID && second.ID < third.ID) {
		t.Fatalf("ids not monotonic: %d %d %d", first.ID, second.ID, third.ID)
	}

	got := h.Records()
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Expression != "25 * 10" || got[1].Expression != "180 + 45" {
		t.Fatalf("order: %+v", got)
	}
	if !got[0].At.Equal(fixed) {
		t.Fatalf("timestamp %v", got[0].At)
	}
}
