package xlsx

import (
	"io"

	"github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	"github.com/tealeg/xlsx"
)

const (
	SheetName   = "Invoice"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	amountFmt   = "#,##0.00"
	timeLayout  = "2006-01-02 15:04:05"
)

type InvoiceWriter struct {
	vendor   string
	currency string
}

func NewInvoiceWriter(vendor, currency string) *InvoiceWriter {
	return &InvoiceWriter{vendor: vendor, currency: currency}
}

// Write lays the invoice out as a header block, one row per entry, then the total.
func (w *InvoiceWriter) Write(out io.Writer, inv domain.Invoice) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return err
	}

	addPair(sheet, "Invoice", inv.Number)
	addPair(sheet, "Vendor", w.vendor)
	addPair(sheet, "Issued", inv.IssuedAt.Format(timeLayout))
	addPair(sheet, "Currency", w.currency)

	header := sheet.AddRow()
	for _, h := range []string{"#", "Entry ID", "Description", "Amount", "Added"} {
		header.AddCell().SetString(h)
	}

	for i, e := range inv.Entries {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetString(e.ID.String())
		row.AddCell().SetString(e.Description)
		row.AddCell().SetFloatWithFormat(e.Amount.InexactFloat64(), amountFmt)
		row.AddCell().SetString(e.CreatedAt.Format(timeLayout))
	}

	total := sheet.AddRow()
	total.AddCell().SetString("")
	total.AddCell().SetString("")
	total.AddCell().SetString("Total")
	total.AddCell().SetFloatWithFormat(inv.Total.InexactFloat64(), amountFmt)

	return file.Write(out)
}

func addPair(sheet *xlsx.Sheet, label, value string) {
	row := sheet.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetString(value)
}
