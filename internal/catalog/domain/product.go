package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategorySpices Category = "spices"
	CategoryGrains Category = "grains"
	CategoryOils   Category = "oils"
	CategorySnacks Category = "snacks"
)

func Categories() []Category {
	return []Category{CategorySpices, CategoryGrains, CategoryOils, CategorySnacks}
}

func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// PricingMode selects which of a product's two prices applies to a line.
type PricingMode string

const (
	PricingUnit PricingMode = "unit"
	PricingBox  PricingMode = "box"
)

func ParsePricingMode(s string) (PricingMode, bool) {
	switch PricingMode(strings.ToLower(strings.TrimSpace(s))) {
	case PricingUnit:
		return PricingUnit, true
	case PricingBox:
		return PricingBox, true
	default:
		return "", false
	}
}

type Product struct {
	ID        int64
	Name      string
	Category  Category
	UnitPrice decimal.Decimal
	BoxPrice  decimal.Decimal
	QtyPerBox int
	Stock     int
	Image     string
	Active    bool
}

// PriceFor returns the unit or box price. Unknown modes fall back to the unit price.
func (p Product) PriceFor(mode PricingMode) decimal.Decimal {
	if mode == PricingBox {
		return p.BoxPrice
	}
	return p.UnitPrice
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// UnitsFor converts a line quantity into stock units.
func (p Product) UnitsFor(mode PricingMode, quantity int) int {
	if mode == PricingBox {
		perBox := p.QtyPerBox
		if perBox <= 0 {
			perBox = 1
		}
		return quantity * perBox
	}
	return quantity
}

type Filter struct {
	Search   string
	Category Category
}
