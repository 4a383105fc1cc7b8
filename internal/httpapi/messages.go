package httpapi

import (
	"errors"

	billingapp "github.com/dwikikusuma/vendor-dashboard/internal/billing/app"
	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	calc "github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	cartapp "github.com/dwikikusuma/vendor-dashboard/internal/cart/app"
	cart "github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/vendor-dashboard/internal/checkout/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	orderapp "github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	returnsapp "github.com/dwikikusuma/vendor-dashboard/internal/returns/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	supportapp "github.com/dwikikusuma/vendor-dashboard/internal/support/app"
)

// toasts is checked in order; more specific errors come first.
var toasts = []struct {
	err  error
	text i18n.Text
}{
	{cartapp.ErrProductNotFound, i18n.Text{En: "Product not found", Hi: "उत्पाद नहीं मिला"}},
	{catalogapp.ErrNotFound, i18n.Text{En: "Product not found", Hi: "उत्पाद नहीं मिला"}},
	{catalogapp.ErrInvalidInput, i18n.Text{En: "Invalid product filter", Hi: "अमान्य उत्पाद फ़िल्टर"}},
	{cart.ErrOutOfStock, i18n.Text{En: "Out of Stock", Hi: "स्टॉक में नहीं"}},
	{cart.ErrInvalidQuantity, i18n.Text{En: "Quantity cannot be negative", Hi: "मात्रा ऋणात्मक नहीं हो सकती"}},
	{cart.ErrInvalidPricingMode, i18n.Text{En: "Choose unit or box pricing", Hi: "इकाई या बॉक्स मूल्य चुनें"}},
	{checkoutapp.ErrEmptyCart, i18n.Text{En: "Your cart is empty", Hi: "आपका कार्ट खाली है"}},
	{checkoutapp.ErrInsufficientStock, i18n.Text{En: "Not enough stock for this order", Hi: "इस ऑर्डर के लिए पर्याप्त स्टॉक नहीं है"}},
	{calc.ErrEvaluation, i18n.Text{En: "Error", Hi: "त्रुटि"}},
	{billingapp.ErrNothingToCommit, i18n.Text{En: "Calculate a result first", Hi: "पहले परिणाम की गणना करें"}},
	{billing.ErrInvalidEntry, i18n.Text{En: "Enter an item and a valid amount", Hi: "आइटम और मान्य राशि दर्ज करें"}},
	{billing.ErrInvalidPayment, i18n.Text{En: "Enter a valid payment amount and method", Hi: "मान्य भुगतान राशि और विधि दर्ज करें"}},
	{orderapp.ErrNotFound, i18n.Text{En: "Order not found", Hi: "ऑर्डर नहीं मिला"}},
	{orderapp.ErrInvalidTransition, i18n.Text{En: "This order cannot move to that status", Hi: "यह ऑर्डर उस स्थिति में नहीं जा सकता"}},
	{orderapp.ErrOverpayment, i18n.Text{En: "Payment is more than the amount due", Hi: "भुगतान देय राशि से अधिक है"}},
	{orderapp.ErrInvalidInput, i18n.Text{En: "Order details are incomplete", Hi: "ऑर्डर विवरण अधूरा है"}},
	{returnsapp.ErrNotFound, i18n.Text{En: "Return not found", Hi: "रिटर्न नहीं मिला"}},
	{returnsapp.ErrNotEligible, i18n.Text{En: "Only delivered orders can be returned", Hi: "केवल वितरित ऑर्डर ही लौटाए जा सकते हैं"}},
	{returnsapp.ErrNoItems, i18n.Text{En: "Select at least one item and a reason", Hi: "कम से कम एक आइटम और कारण चुनें"}},
	{returnsapp.ErrInvalidQuantity, i18n.Text{En: "Return quantity exceeds ordered quantity", Hi: "रिटर्न मात्रा ऑर्डर मात्रा से अधिक है"}},
	{returnsapp.ErrInvalidTransition, i18n.Text{En: "This return has already been decided", Hi: "इस रिटर्न पर पहले ही निर्णय हो चुका है"}},
	{supportapp.ErrInvalidInput, i18n.Text{En: "Please fill in subject and message", Hi: "कृपया विषय और संदेश भरें"}},
	{session.ErrNotFound, i18n.Text{En: "Your session has ended", Hi: "आपका सत्र समाप्त हो गया है"}},
	{session.ErrInvalidToken, i18n.Text{En: "Your session has ended", Hi: "आपका सत्र समाप्त हो गया है"}},
	{errBadRequest, i18n.Text{En: "Invalid request", Hi: "अमान्य अनुरोध"}},
}

var genericToast = i18n.Text{En: "Something went wrong", Hi: "कुछ गलत हो गया"}

// errorMessage picks the toast shown for err in the session's language.
func errorMessage(lang i18n.Language, err error) string {
	for _, t := range toasts {
		if errors.Is(err, t.err) {
			return t.text.In(lang)
		}
	}
	return genericToast.In(lang)
}
