package app

import (
	"io"

	"github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
)

type InvoiceWriter interface {
	Write(w io.Writer, inv domain.Invoice) error
}
