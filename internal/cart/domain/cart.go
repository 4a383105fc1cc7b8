package domain

import (
	"errors"
	"fmt"

	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPricingMode = errors.New("invalid pricing mode")
	ErrOutOfStock         = errors.New("product out of stock")
)

// LineKey identifies a cart line. A cart never holds two lines with the same key.
type LineKey struct {
	ProductID int64
	Mode      catalog.PricingMode
}

type CartLine struct {
	ProductID  int64
	Mode       catalog.PricingMode
	Name       string
	Image      string
	UnitAmount decimal.Decimal
	Quantity   int
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Mode: l.Mode}
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitAmount.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart keeps lines in insertion order for display.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) index(key LineKey) int {
	for i, l := range c.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}

// AddOrIncrement snapshots the product price for mode and adds one to the matching line,
// inserting it with quantity 1 when absent.
func (c *Cart) AddOrIncrement(p catalog.Product, mode catalog.PricingMode) error {
	if mode != catalog.PricingUnit && mode != catalog.PricingBox {
		return fmt.Errorf("%w: %q", ErrInvalidPricingMode, mode)
	}
	if !p.InStock() {
		return fmt.Errorf("%w: product %d", ErrOutOfStock, p.ID)
	}

	key := LineKey{ProductID: p.ID, Mode: mode}
	if i := c.index(key); i >= 0 {
		c.lines[i].Quantity++
		return nil
	}

	c.lines = append(c.lines, CartLine{
		ProductID:  p.ID,
		Mode:       mode,
		Name:       p.Name,
		Image:      p.Image,
		UnitAmount: p.PriceFor(mode),
		Quantity:   1,
	})
	return nil
}

// SetQuantity overwrites a line's quantity. Zero removes the line; an absent key is left alone.
func (c *Cart) SetQuantity(key LineKey, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if quantity == 0 {
		c.Remove(key)
		return nil
	}

	if i := c.index(key); i >= 0 {
		c.lines[i].Quantity = quantity
	}
	return nil
}

func (c *Cart) Remove(key LineKey) {
	i := c.index(key)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Line(key LineKey) (CartLine, bool) {
	if i := c.index(key); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

// Lines returns a copy; callers cannot mutate the cart through it.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount is the sum of quantities across lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal equals the total: there is no tax or discount model.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
