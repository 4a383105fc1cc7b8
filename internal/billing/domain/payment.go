package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPayment = errors.New("invalid payment")

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentUPI  PaymentMethod = "upi"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentUPI}
}

func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentCash:
		return PaymentCash, true
	case PaymentUPI:
		return PaymentUPI, true
	default:
		return "", false
	}
}

// PaymentReceipt is not linked to ledger entries; it records what was tendered.
type PaymentReceipt struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	Method PaymentMethod
	At     time.Time
}

// RecordPayment validates raw form input and produces a receipt.
func RecordPayment(amount, method string, at time.Time) (PaymentReceipt, error) {
	v, err := ParseAmount(amount)
	if err != nil {
		return PaymentReceipt{}, fmt.Errorf("%w: %v", ErrInvalidPayment, err)
	}
	if !v.IsPositive() {
		return PaymentReceipt{}, fmt.Errorf("%w: amount must be positive", ErrInvalidPayment)
	}

	if strings.TrimSpace(method) == "" {
		return PaymentReceipt{}, fmt.Errorf("%w: method is required", ErrInvalidPayment)
	}
	m, ok := ParsePaymentMethod(method)
	if !ok {
		return PaymentReceipt{}, fmt.Errorf("%w: unknown method %q", ErrInvalidPayment, method)
	}

	return PaymentReceipt{
		ID:     uuid.New(),
		Amount: v,
		Method: m,
		At:     at,
	}, nil
}
