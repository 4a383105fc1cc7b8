package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type sessionRequest struct {
	Language string `json:"language"`
}

type sessionView struct {
	SessionID string    `json:"session_id"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	CartCount int       `json:"cart_count"`
}

func toSessionView(s *session.Session) sessionView {
	return sessionView{
		SessionID: s.ID.String(),
		Language:  string(s.Language),
		CreatedAt: s.CreatedAt,
		CartCount: s.Cart.ItemCount(),
	}
}

// createSession starts a dashboard visit. An empty body or unknown language
// falls back to the default language.
func (h *Handler) createSession(c *gin.Context) {
	var req sessionRequest
	if c.Request.ContentLength > 0 {
		if err := bindJSON(c, &req); err != nil {
			writeError(c, h.opts.DefaultLanguage, err)
			return
		}
	}

	lang, ok := i18n.ParseLanguage(req.Language)
	if !ok {
		lang = h.opts.DefaultLanguage
	}

	s := h.opts.Sessions.Create(lang)
	token, exp, err := h.opts.Tokens.Issue(s.ID)
	if err != nil {
		_ = h.opts.Sessions.Close(s.ID)
		writeError(c, lang, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID.String(),
		"token":      token,
		"expires_at": exp,
		"language":   string(lang),
	})
}

func (h *Handler) getSession(c *gin.Context) {
	var v sessionView
	ok := h.withSession(c, func(s *session.Session) error {
		v = toSessionView(s)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) updateSession(c *gin.Context) {
	var v sessionView
	ok := h.withSession(c, func(s *session.Session) error {
		var req sessionRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		lang, ok := i18n.ParseLanguage(req.Language)
		if !ok {
			return fmt.Errorf("%w: unknown language %q", errBadRequest, req.Language)
		}
		s.Language = lang
		v = toSessionView(s)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) closeSession(c *gin.Context) {
	id := c.MustGet(sessionKey).(uuid.UUID)
	if err := h.opts.Sessions.Close(id); err != nil {
		writeError(c, h.opts.DefaultLanguage, err)
		return
	}
	c.Status(http.StatusNoContent)
}
