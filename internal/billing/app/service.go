package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	calc "github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	"github.com/shopspring/decimal"
)

var ErrNothingToCommit = errors.New("no evaluated result to add to the bill")

type Service struct {
	invoices InvoiceWriter
	ids      domain.IDSource
	now      func() time.Time
}

func NewService(invoices InvoiceWriter, ids domain.IDSource) *Service {
	return &Service{
		invoices: invoices,
		ids:      ids,
		now:      time.Now,
	}
}

// CommitCalculation moves the pad's evaluated result onto the bill and clears the pad.
func (s *Service) CommitCalculation(pad *calc.Pad, ledger *domain.Ledger) (domain.BillingEntry, error) {
	result, ok := pad.Result()
	if !ok {
		return domain.BillingEntry{}, ErrNothingToCommit
	}

	entry, err := ledger.AppendEntry(pad.Expression(), result)
	if err != nil {
		return domain.BillingEntry{}, err
	}
	pad.Clear()
	return entry, nil
}

func (s *Service) AddEntry(ledger *domain.Ledger, description, amount string) (domain.BillingEntry, error) {
	v, err := domain.ParseAmount(amount)
	if err != nil {
		return domain.BillingEntry{}, fmt.Errorf("%w: %v", domain.ErrInvalidEntry, err)
	}
	return ledger.AppendEntry(description, v)
}

type PaymentResult struct {
	Receipt   domain.PaymentReceipt
	BillTotal decimal.Decimal
}

// ProcessPayment records a receipt next to the current bill total. The two are
// reported side by side and never reconciled here.
func (s *Service) ProcessPayment(ledger *domain.Ledger, amount, method string) (PaymentResult, error) {
	receipt, err := domain.RecordPayment(amount, method, s.now())
	if err != nil {
		return PaymentResult{}, err
	}
	return PaymentResult{Receipt: receipt, BillTotal: ledger.Total()}, nil
}

// GenerateInvoice writes the current bill and clears the ledger once the write succeeds.
func (s *Service) GenerateInvoice(ctx context.Context, ledger *domain.Ledger, w io.Writer) (domain.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return domain.Invoice{}, err
	}
	if ledger.Len() == 0 {
		return domain.Invoice{}, fmt.Errorf("%w: bill is empty", domain.ErrInvalidEntry)
	}

	inv := domain.Invoice{
		Number:   fmt.Sprintf("INV-%s", s.ids.Generate().String()),
		IssuedAt: s.now(),
		Entries:  ledger.Entries(),
		Total:    ledger.Total(),
	}

	if err := s.invoices.Write(w, inv); err != nil {
		return domain.Invoice{}, fmt.Errorf("write invoice %s: %w", inv.Number, err)
	}

	ledger.Clear()
	return inv, nil
}
