package httpapi

import (
	"net/http"

	returns "github.com/dwikikusuma/vendor-dashboard/internal/returns/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

type returnRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Items   []struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
	} `json:"items"`
	Note string `json:"note"`
}

// listReturns serves the history, or only undecided returns with ?status=pending.
func (h *Handler) listReturns(c *gin.Context) {
	out := []returnView{}
	ok := h.withSession(c, func(s *session.Session) error {
		var (
			list []returns.Return
			err  error
		)
		if c.Query("status") == "pending" {
			list, err = h.svc.Returns.Pending(c.Request.Context())
		} else {
			list, err = h.svc.Returns.List(c.Request.Context())
		}
		if err != nil {
			return err
		}
		for _, r := range list {
			out = append(out, toReturnView(s.Language, r))
		}
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"returns": out})
	}
}

func (h *Handler) initiateReturn(c *gin.Context) {
	h.returnAction(c, http.StatusCreated, func(s *session.Session) (returns.Return, error) {
		var req returnRequest
		if err := bindJSON(c, &req); err != nil {
			return returns.Return{}, err
		}
		lines := make([]returns.LineRequest, 0, len(req.Items))
		for _, it := range req.Items {
			lines = append(lines, returns.LineRequest{Name: it.Name, Quantity: it.Quantity, Reason: it.Reason})
		}
		return h.svc.Returns.Initiate(c.Request.Context(), req.OrderID, lines, req.Note)
	})
}

func (h *Handler) approveReturn(c *gin.Context) {
	h.returnAction(c, http.StatusOK, func(s *session.Session) (returns.Return, error) {
		return h.svc.Returns.Approve(c.Request.Context(), c.Param("id"))
	})
}

func (h *Handler) rejectReturn(c *gin.Context) {
	h.returnAction(c, http.StatusOK, func(s *session.Session) (returns.Return, error) {
		var req struct {
			Reason string `json:"reason"`
		}
		if c.Request.ContentLength > 0 {
			if err := bindJSON(c, &req); err != nil {
				return returns.Return{}, err
			}
		}
		return h.svc.Returns.Reject(c.Request.Context(), c.Param("id"), req.Reason)
	})
}

func (h *Handler) returnAction(c *gin.Context, code int, fn func(*session.Session) (returns.Return, error)) {
	var v returnView
	ok := h.withSession(c, func(s *session.Session) error {
		r, err := fn(s)
		if err != nil {
			return err
		}
		v = toReturnView(s.Language, r)
		return nil
	})
	if ok {
		c.JSON(code, v)
	}
}
