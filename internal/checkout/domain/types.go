package domain

import (
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type QuoteLine struct {
	ProductID int64
	Mode      catalog.PricingMode
	Name      string
	Quantity  int
	// Units is the stock the line consumes: Quantity, or Quantity boxes of QtyPerBox.
	Units     int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines []QuoteLine
	Total decimal.Decimal
}
