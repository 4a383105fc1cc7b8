package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getBill(c *gin.Context) {
	var v billView
	ok := h.withSession(c, func(s *session.Session) error {
		v = toBillView(s.Ledger)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) addBillEntry(c *gin.Context) {
	var (
		entry entryView
		bill  billView
	)
	ok := h.withSession(c, func(s *session.Session) error {
		var req struct {
			Description string     `json:"description"`
			Amount      amountText `json:"amount"`
		}
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		e, err := h.svc.Billing.AddEntry(s.Ledger, req.Description, string(req.Amount))
		if err != nil {
			return err
		}
		entry, bill = toEntryView(e), toBillView(s.Ledger)
		return nil
	})
	if ok {
		c.JSON(http.StatusCreated, gin.H{"entry": entry, "bill": bill})
	}
}

func (h *Handler) commitCalculation(c *gin.Context) {
	var (
		entry entryView
		bill  billView
		pad   padView
	)
	ok := h.withSession(c, func(s *session.Session) error {
		e, err := h.svc.Billing.CommitCalculation(s.Pad, s.Ledger)
		if err != nil {
			return err
		}
		entry, bill, pad = toEntryView(e), toBillView(s.Ledger), toPadView(s.Language, s.Pad)
		return nil
	})
	if ok {
		c.JSON(http.StatusCreated, gin.H{"entry": entry, "bill": bill, "pad": pad})
	}
}

func (h *Handler) clearBill(c *gin.Context) {
	var v billView
	ok := h.withSession(c, func(s *session.Session) error {
		s.Ledger.Clear()
		v = toBillView(s.Ledger)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) processPayment(c *gin.Context) {
	var v paymentView
	ok := h.withSession(c, func(s *session.Session) error {
		var req struct {
			Amount amountText `json:"amount"`
			Method string     `json:"method"`
		}
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		res, err := h.svc.Billing.ProcessPayment(s.Ledger, string(req.Amount), req.Method)
		if err != nil {
			return err
		}
		v = toPaymentView(s.Language, res)
		return nil
	})
	if ok {
		c.JSON(http.StatusCreated, v)
	}
}

// generateInvoice renders into memory first so a failed write leaves the bill intact
// and never sends a partial file.
func (h *Handler) generateInvoice(c *gin.Context) {
	var (
		buf bytes.Buffer
		inv billing.Invoice
	)
	ok := h.withSession(c, func(s *session.Session) error {
		var err error
		inv, err = h.svc.Billing.GenerateInvoice(c.Request.Context(), s.Ledger, &buf)
		return err
	})
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", inv.Number))
	c.Header("X-Invoice-Number", inv.Number)
	c.Data(http.StatusOK, h.opts.InvoiceContentType, buf.Bytes())
}
