package httpapi

import (
	"errors"
	"net/http"
	"strings"

	calc "github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getPad(c *gin.Context) {
	var v padView
	ok := h.withSession(c, func(s *session.Session) error {
		v = toPadView(s.Language, s.Pad)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

// evaluationShown reports whether err is a failed "=" that the pad now
// displays. That is a normal keypad outcome, not a bad request.
func evaluationShown(key string, pad *calc.Pad, err error) bool {
	return strings.TrimSpace(key) == calc.KeyEquals &&
		errors.Is(err, calc.ErrEvaluation) &&
		pad.State() == calc.PadErrored
}

func (h *Handler) pressKey(c *gin.Context) {
	var v padView
	ok := h.withSession(c, func(s *session.Session) error {
		var req struct {
			Key string `json:"key" binding:"required"`
		}
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		_, err := h.svc.Calculator.Press(s.Pad, s.History, req.Key)
		if err != nil && !evaluationShown(req.Key, s.Pad, err) {
			return err
		}
		v = toPadView(s.Language, s.Pad)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) evaluate(c *gin.Context) {
	var v padView
	ok := h.withSession(c, func(s *session.Session) error {
		var req struct {
			Expression string `json:"expression"`
		}
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		_, err := h.svc.Calculator.Evaluate(s.Pad, s.History, req.Expression)
		if err != nil && !evaluationShown(calc.KeyEquals, s.Pad, err) {
			return err
		}
		v = toPadView(s.Language, s.Pad)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) history(c *gin.Context) {
	var out []recordView
	ok := h.withSession(c, func(s *session.Session) error {
		out = toRecordViews(s.History.Records())
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"history": out})
	}
}
