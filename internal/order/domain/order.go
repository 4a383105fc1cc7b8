package domain

import (
	"time"

	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
)

func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusDelivered}
}

func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusProcessing:
		return 1
	case StatusDelivered:
		return 2
	default:
		return -1
	}
}

// CanAdvanceTo allows forward moves only.
func (s Status) CanAdvanceTo(next Status) bool {
	return s.rank() >= 0 && next.rank() > s.rank()
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryShipped   DeliveryStatus = "shipped"
	DeliveryDelivered DeliveryStatus = "delivered"
)

func DeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliveryPending, DeliveryShipped, DeliveryDelivered}
}

type Order struct {
	ID        string
	Customer  string
	Date      time.Time
	Status    Status
	Delivery  DeliveryStatus
	Total     decimal.Decimal
	Paid      decimal.Decimal
	Items     []OrderItem
	Payments  []billing.PaymentReceipt
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Due is what remains unpaid on the order.
func (o Order) Due() decimal.Decimal {
	return o.Total.Sub(o.Paid)
}

// Payment is a receipt recorded against one order.
type Payment struct {
	OrderID  string
	Customer string
	Receipt  billing.PaymentReceipt
}

type OrderItem struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CreateOrderRequest struct {
	Customer string
	Items    []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

type Summary struct {
	TotalSales       decimal.Decimal
	PendingOrders    int
	CompletedOrders  int
	OutstandingDues  decimal.Decimal
	ProcessingOrders int
}
