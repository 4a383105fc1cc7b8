package httpapi

import (
	"log/slog"
	"time"

	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionKey = "session_id"

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if id, ok := c.Get(sessionKey); ok {
			attrs = append(attrs, slog.Any("session_id", id))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("http request", attrs...)
		case c.Writer.Status() >= 400:
			log.Warn("http request", attrs...)
		default:
			log.Info("http request", attrs...)
		}
	}
}

func (h *Handler) requireSession(c *gin.Context) {
	id, err := h.opts.Tokens.Parse(c.GetHeader("Authorization"))
	if err != nil {
		writeError(c, h.opts.DefaultLanguage, err)
		return
	}
	c.Set(sessionKey, id)
	c.Next()
}

// withSession runs fn holding the caller's session. Errors are written in the
// session's language and reported as false.
func (h *Handler) withSession(c *gin.Context, fn func(*session.Session) error) bool {
	id := c.MustGet(sessionKey).(uuid.UUID)
	lang := h.opts.DefaultLanguage

	err := h.opts.Sessions.Do(id, func(s *session.Session) error {
		lang = s.Language
		return fn(s)
	})
	if err != nil {
		writeError(c, lang, err)
		return false
	}
	return true
}
