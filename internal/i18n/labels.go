package i18n

import (
	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	order "github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	returns "github.com/dwikikusuma/vendor-dashboard/internal/returns/domain"
	support "github.com/dwikikusuma/vendor-dashboard/internal/support/domain"
)

func OrderStatusLabel(l Language, s order.Status) string {
	switch s {
	case order.StatusPending:
		return Text{"Pending", "लंबित"}.In(l)
	case order.StatusProcessing:
		return Text{"Processing", "प्रसंस्करण"}.In(l)
	case order.StatusDelivered:
		return Text{"Delivered", "वितरित"}.In(l)
	}
	return string(s)
}

func DeliveryStatusLabel(l Language, s order.DeliveryStatus) string {
	switch s {
	case order.DeliveryPending:
		return Text{"Pending", "लंबित"}.In(l)
	case order.DeliveryShipped:
		return Text{"Shipped", "भेजा गया"}.In(l)
	case order.DeliveryDelivered:
		return Text{"Delivered", "वितरित"}.In(l)
	}
	return string(s)
}

func ReturnStatusLabel(l Language, s returns.Status) string {
	switch s {
	case returns.StatusPending:
		return Text{"Pending", "लंबित"}.In(l)
	case returns.StatusProcessing:
		return Text{"Processing", "प्रसंस्करण"}.In(l)
	case returns.StatusApproved:
		return Text{"Approved", "मंजूर"}.In(l)
	case returns.StatusRejected:
		return Text{"Rejected", "अस्वीकृत"}.In(l)
	}
	return string(s)
}

func ReturnReasonLabel(l Language, r returns.Reason) string {
	switch r {
	case returns.ReasonDefective:
		return Text{"Defective Product", "खराब उत्पाद"}.In(l)
	case returns.ReasonWrongItem:
		return Text{"Wrong Item Received", "गलत आइटम मिला"}.In(l)
	case returns.ReasonNotRequired:
		return Text{"Not Required", "आवश्यक नहीं"}.In(l)
	case returns.ReasonDamaged:
		return Text{"Damaged Packaging", "क्षतिग्रस्त पैकेजिंग"}.In(l)
	}
	return string(r)
}

func CategoryLabel(l Language, c catalog.Category) string {
	switch c {
	case catalog.CategorySpices:
		return Text{"Spices", "मसाले"}.In(l)
	case catalog.CategoryGrains:
		return Text{"Grains", "अनाज"}.In(l)
	case catalog.CategoryOils:
		return Text{"Oils", "तेल"}.In(l)
	case catalog.CategorySnacks:
		return Text{"Snacks", "नाश्ता"}.In(l)
	}
	return string(c)
}

func PricingModeLabel(l Language, m catalog.PricingMode) string {
	switch m {
	case catalog.PricingUnit:
		return Text{"Unit Price", "इकाई मूल्य"}.In(l)
	case catalog.PricingBox:
		return Text{"Box Price", "बॉक्स मूल्य"}.In(l)
	}
	return string(m)
}

func PaymentMethodLabel(l Language, m billing.PaymentMethod) string {
	switch m {
	case billing.PaymentCash:
		return Text{"Cash", "नकद"}.In(l)
	case billing.PaymentUPI:
		return Text{"UPI", "यूपीआई"}.In(l)
	}
	return string(m)
}

func PriorityLabel(l Language, p support.Priority) string {
	switch p {
	case support.PriorityImportant:
		return Text{"Important", "महत्वपूर्ण"}.In(l)
	case support.PriorityGeneral:
		return Text{"General", "सामान्य"}.In(l)
	}
	return string(p)
}
