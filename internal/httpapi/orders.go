package httpapi

import (
	"fmt"
	"net/http"

	orderapp "github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	order "github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

const recentOrders = 5

func (h *Handler) dashboard(c *gin.Context) {
	var (
		summary summaryView
		recent  []orderView
	)
	ok := h.withSession(c, func(s *session.Session) error {
		ctx := c.Request.Context()

		sum, err := h.svc.Orders.Summary(ctx)
		if err != nil {
			return err
		}
		pending, err := h.svc.Returns.Pending(ctx)
		if err != nil {
			return err
		}
		orders, err := h.svc.Orders.ListOrders(ctx, "")
		if err != nil {
			return err
		}
		if len(orders) > recentOrders {
			orders = orders[:recentOrders]
		}

		summary = summaryView{
			TotalSales:       toMoney(sum.TotalSales),
			PendingOrders:    sum.PendingOrders,
			ProcessingOrders: sum.ProcessingOrders,
			CompletedOrders:  sum.CompletedOrders,
			OutstandingDues:  toMoney(sum.OutstandingDues),
			PendingReturns:   len(pending),
		}
		recent = toOrderViews(s.Language, orders)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"summary": summary, "recent_orders": recent})
	}
}

func (h *Handler) listOrders(c *gin.Context) {
	var out []orderView
	ok := h.withSession(c, func(s *session.Session) error {
		orders, err := h.svc.Orders.ListOrders(c.Request.Context(), c.Query("status"))
		if err != nil {
			return err
		}
		out = toOrderViews(s.Language, orders)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"orders": out})
	}
}

func (h *Handler) getOrder(c *gin.Context) {
	h.orderAction(c, http.StatusOK, func(s *session.Session) (order.Order, error) {
		return h.svc.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	})
}

func (h *Handler) advanceOrder(c *gin.Context) {
	h.orderAction(c, http.StatusOK, func(s *session.Session) (order.Order, error) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := bindJSON(c, &req); err != nil {
			return order.Order{}, err
		}
		next, ok := order.ParseStatus(req.Status)
		if !ok {
			return order.Order{}, fmt.Errorf("%w: unknown status %q", orderapp.ErrInvalidInput, req.Status)
		}
		return h.svc.Orders.AdvanceStatus(c.Request.Context(), c.Param("id"), next)
	})
}

func (h *Handler) shipOrder(c *gin.Context) {
	h.orderAction(c, http.StatusOK, func(s *session.Session) (order.Order, error) {
		return h.svc.Orders.MarkShipped(c.Request.Context(), c.Param("id"))
	})
}

func (h *Handler) recordOrderPayment(c *gin.Context) {
	var (
		o       orderView
		receipt receiptView
	)
	ok := h.withSession(c, func(s *session.Session) error {
		var req struct {
			Amount amountText `json:"amount"`
			Method string     `json:"method"`
		}
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		updated, r, err := h.svc.Orders.RecordPayment(c.Request.Context(), c.Param("id"), string(req.Amount), req.Method)
		if err != nil {
			return err
		}
		o, receipt = toOrderView(s.Language, updated), toReceiptView(s.Language, r)
		return nil
	})
	if ok {
		c.JSON(http.StatusCreated, gin.H{"order": o, "receipt": receipt})
	}
}

func (h *Handler) listPayments(c *gin.Context) {
	out := []orderPaymentView{}
	ok := h.withSession(c, func(s *session.Session) error {
		payments, err := h.svc.Orders.ListPayments(c.Request.Context())
		if err != nil {
			return err
		}
		for _, p := range payments {
			out = append(out, orderPaymentView{
				OrderID:     p.OrderID,
				Customer:    p.Customer,
				receiptView: toReceiptView(s.Language, p.Receipt),
			})
		}
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"payments": out})
	}
}

func (h *Handler) confirmDelivery(c *gin.Context) {
	h.orderAction(c, http.StatusOK, func(s *session.Session) (order.Order, error) {
		return h.svc.Orders.ConfirmDelivery(c.Request.Context(), c.Param("id"))
	})
}

func (h *Handler) orderAction(c *gin.Context, code int, fn func(*session.Session) (order.Order, error)) {
	var v orderView
	ok := h.withSession(c, func(s *session.Session) error {
		o, err := fn(s)
		if err != nil {
			return err
		}
		v = toOrderView(s.Language, o)
		return nil
	})
	if ok {
		c.JSON(code, v)
	}
}
