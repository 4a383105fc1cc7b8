package httpapi

import (
	"net/http"
	"time"

	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	support "github.com/dwikikusuma/vendor-dashboard/internal/support/domain"
	"github.com/gin-gonic/gin"
)

type announcementView struct {
	ID            int    `json:"id"`
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Date          string `json:"date"`
	Priority      string `json:"priority"`
	PriorityLabel string `json:"priority_label"`
}

func (h *Handler) supportPanel(c *gin.Context) {
	var (
		announcements []announcementView
		faq           []support.FAQ
	)
	ok := h.withSession(c, func(s *session.Session) error {
		for _, a := range h.svc.Support.Announcements() {
			announcements = append(announcements, announcementView{
				ID:            a.ID,
				Kind:          string(a.Kind),
				Title:         a.Title,
				Message:       a.Message,
				Date:          a.Date.Format(dateLayout),
				Priority:      string(a.Priority),
				PriorityLabel: i18n.PriorityLabel(s.Language, a.Priority),
			})
		}
		faq = h.svc.Support.FAQ(s.Language)
		return nil
	})
	if !ok {
		return
	}

	type faqView struct {
		ID       string `json:"id"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	faqs := make([]faqView, 0, len(faq))
	for _, f := range faq {
		faqs = append(faqs, faqView{ID: f.ID, Question: f.Question, Answer: f.Answer})
	}
	c.JSON(http.StatusOK, gin.H{"announcements": announcements, "faq": faqs})
}

func (h *Handler) submitTicket(c *gin.Context) {
	type ticketView struct {
		ID          string    `json:"id"`
		Subject     string    `json:"subject"`
		SubmittedAt time.Time `json:"submitted_at"`
	}

	var v ticketView
	ok := h.withSession(c, func(s *session.Session) error {
		var req struct {
			Subject string `json:"subject"`
			Message string `json:"message"`
		}
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		t, err := h.svc.Support.SubmitTicket(req.Subject, req.Message)
		if err != nil {
			return err
		}
		v = ticketView{ID: t.ID.String(), Subject: t.Subject, SubmittedAt: t.SubmittedAt}
		return nil
	})
	if ok {
		c.JSON(http.StatusCreated, v)
	}
}
