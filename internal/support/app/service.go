package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/dwikikusuma/vendor-dashboard/internal/support/domain"
	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type faqEntry struct {
	id       string
	question i18n.Text
	answer   i18n.Text
}

type Service struct {
	announcements []domain.Announcement
	faqs          []faqEntry
	now           func() time.Time
}

func NewService() *Service {
	return &Service{
		announcements: sampleAnnouncements(),
		faqs:          faqs,
		now:           time.Now,
	}
}

// Announcements are returned newest first.
func (s *Service) Announcements() []domain.Announcement {
	out := append([]domain.Announcement(nil), s.announcements...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *Service) FAQ(lang i18n.Language) []domain.FAQ {
	out := make([]domain.FAQ, 0, len(s.faqs))
	for _, f := range s.faqs {
		out = append(out, domain.FAQ{ID: f.id, Question: f.question.In(lang), Answer: f.answer.In(lang)})
	}
	return out
}

// SubmitTicket accepts a support message. Nothing is delivered anywhere; the
// ticket id is what the vendor quotes when calling support.
func (s *Service) SubmitTicket(subject, message string) (domain.Ticket, error) {
	subject = strings.TrimSpace(subject)
	message = strings.TrimSpace(message)
	if subject == "" || message == "" {
		return domain.Ticket{}, fmt.Errorf("%w: subject and message are required", ErrInvalidInput)
	}

	return domain.Ticket{
		ID:          uuid.New(),
		Subject:     subject,
		Message:     message,
		SubmittedAt: s.now(),
	}, nil
}

func sampleAnnouncements() []domain.Announcement {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []domain.Announcement{
		{
			ID: 3, Kind: domain.KindGeneral, Priority: domain.PriorityGeneral, Date: day("2024-01-10"),
			Title:   "Mobile App Coming Soon",
			Message: "Our mobile application will be launching next month with enhanced features.",
		},
		{
			ID: 1, Kind: domain.KindMaintenance, Priority: domain.PriorityImportant, Date: day("2024-01-18"),
			Title:   "Scheduled System Maintenance",
			Message: "System will be down for maintenance on Jan 20, 2024 from 2:00 AM to 4:00 AM IST.",
		},
		{
			ID: 2, Kind: domain.KindFeature, Priority: domain.PriorityGeneral, Date: day("2024-01-15"),
			Title:   "New Voice Billing Feature",
			Message: "Voice billing in Hindi and English is now available. Enable it from the header or calculator.",
		},
	}
}

var faqs = []faqEntry{
	{
		id: "add-product",
		question: i18n.Text{
			En: "How do I add products to my cart?",
			Hi: "मैं अपने कार्ट में उत्पाद कैसे जोड़ूं?",
		},
		answer: i18n.Text{
			En: `Navigate to the Products section, search for items, and click "Add to Cart". You can toggle between unit and box pricing.`,
			Hi: `उत्पाद अनुभाग पर जाएं, आइटम खोजें, और "कार्ट में जोड़ें" पर क्लिक करें। आप यूनिट और बॉक्स मूल्य के बीच टॉगल कर सकते हैं।`,
		},
	},
	{
		id: "track-order",
		question: i18n.Text{
			En: "How can I track my orders?",
			Hi: "मैं अपने ऑर्डर को कैसे ट्रैक कर सकता हूं?",
		},
		answer: i18n.Text{
			En: "Go to the Orders section to view all your orders and their delivery status. You can also confirm delivery for shipped orders.",
			Hi: "अपने सभी ऑर्डर और उनकी डिलीवरी स्थिति देखने के लिए ऑर्डर अनुभाग पर जाएं। आप भेजे गए ऑर्डर के लिए डिलीवरी की पुष्टि भी कर सकते हैं।",
		},
	},
	{
		id: "return",
		question: i18n.Text{
			En: "How do I return items?",
			Hi: "मैं आइटम कैसे वापस करूं?",
		},
		answer: i18n.Text{
			En: "Visit the Returns section, select the order, choose items to return with quantities and reasons, then submit the return request.",
			Hi: "रिटर्न अनुभाग पर जाएं, ऑर्डर का चयन करें, मात्रा और कारणों के साथ वापसी के लिए आइटम चुनें, फिर रिटर्न अनुरोध सबमिट करें।",
		},
	},
	{
		id: "payment",
		question: i18n.Text{
			En: "What payment methods are supported?",
			Hi: "कौन से भुगतान विधियां समर्थित हैं?",
		},
		answer: i18n.Text{
			En: "We support both Cash and UPI payments. You can process payments in the Billing section.",
			Hi: "हम नकद और यूपीआई दोनों भुगतान का समर्थन करते हैं। आप बिलिंग अनुभाग में भुगतान प्रक्रिया कर सकते हैं।",
		},
	},
	{
		id: "calculator",
		question: i18n.Text{
			En: "How do I add a calculation to the bill?",
			Hi: "मैं गणना को बिल में कैसे जोड़ूं?",
		},
		answer: i18n.Text{
			En: `Type the calculation on the keypad, press "=", then "Add to Bill". The expression becomes the bill line and the result its amount.`,
			Hi: `कीपैड पर गणना लिखें, "=" दबाएं, फिर "बिल में जोड़ें"। व्यंजक बिल की पंक्ति और परिणाम उसकी राशि बन जाता है।`,
		},
	},
}
