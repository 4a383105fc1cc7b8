package httpapi

import (
	"time"

	billingapp "github.com/dwikikusuma/vendor-dashboard/internal/billing/app"
	billing "github.com/dwikikusuma/vendor-dashboard/internal/billing/domain"
	calc "github.com/dwikikusuma/vendor-dashboard/internal/calculator/domain"
	cart "github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	checkout "github.com/dwikikusuma/vendor-dashboard/internal/checkout/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	order "github.com/dwikikusuma/vendor-dashboard/internal/order/domain"
	returns "github.com/dwikikusuma/vendor-dashboard/internal/returns/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// money carries the exact amount as a string alongside its display form.
type money struct {
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
}

func toMoney(d decimal.Decimal) money {
	return money{Amount: d, Display: i18n.FormatAmount(d)}
}

type productView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	UnitPrice     money  `json:"unit_price"`
	BoxPrice      money  `json:"box_price"`
	Price         money  `json:"price"`
	QtyPerBox     int    `json:"qty_per_box"`
	Stock         int    `json:"stock"`
	InStock       bool   `json:"in_stock"`
	Image         string `json:"image"`
}

func toProductView(lang i18n.Language, p catalog.Product, mode catalog.PricingMode) productView {
	return productView{
		ID:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		CategoryLabel: i18n.CategoryLabel(lang, p.Category),
		UnitPrice:     toMoney(p.UnitPrice),
		BoxPrice:      toMoney(p.BoxPrice),
		Price:         toMoney(p.PriceFor(mode)),
		QtyPerBox:     p.QtyPerBox,
		Stock:         p.Stock,
		InStock:       p.InStock(),
		Image:         p.Image,
	}
}

type cartLineView struct {
	ProductID  int64  `json:"product_id"`
	Mode       string `json:"mode"`
	ModeLabel  string `json:"mode_label"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	UnitAmount money  `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
	LineTotal  money  `json:"line_total"`
}

type cartView struct {
	Lines     []cartLineView `json:"lines"`
	ItemCount int            `json:"item_count"`
	Subtotal  money          `json:"subtotal"`
	Total     money          `json:"total"`
}

func toCartView(lang i18n.Language, c *cart.Cart) cartView {
	v := cartView{
		Lines:     make([]cartLineView, 0, c.Len()),
		ItemCount: c.ItemCount(),
		Subtotal:  toMoney(c.Subtotal()),
		Total:     toMoney(c.Subtotal()),
	}
	for _, l := range c.Lines() {
		v.Lines = append(v.Lines, cartLineView{
			ProductID:  l.ProductID,
			Mode:       string(l.Mode),
			ModeLabel:  i18n.PricingModeLabel(lang, l.Mode),
			Name:       l.Name,
			Image:      l.Image,
			UnitAmount: toMoney(l.UnitAmount),
			Quantity:   l.Quantity,
			LineTotal:  toMoney(l.LineTotal()),
		})
	}
	return v
}

type quoteLineView struct {
	ProductID int64  `json:"product_id"`
	Mode      string `json:"mode"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Units     int    `json:"units"`
	UnitPrice money  `json:"unit_price"`
	LineTotal money  `json:"line_total"`
}

type quoteView struct {
	Lines []quoteLineView `json:"lines"`
	Total money           `json:"total"`
}

func toQuoteView(q checkout.Quote) quoteView {
	v := quoteView{Lines: make([]quoteLineView, 0, len(q.Lines)), Total: toMoney(q.Total)}
	for _, l := range q.Lines {
		v.Lines = append(v.Lines, quoteLineView{
			ProductID: l.ProductID,
			Mode:      string(l.Mode),
			Name:      l.Name,
			Quantity:  l.Quantity,
			Units:     l.Units,
			UnitPrice: toMoney(l.UnitPrice),
			LineTotal: toMoney(l.LineTotal),
		})
	}
	return v
}

type orderItemView struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     money  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal money  `json:"line_total"`
}

type orderView struct {
	ID            string          `json:"id"`
	Customer      string          `json:"customer"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
	Delivery      string          `json:"delivery"`
	DeliveryLabel string          `json:"delivery_label"`
	Total         money           `json:"total"`
	Paid          money           `json:"paid"`
	Due           money           `json:"due"`
	Items         []orderItemView `json:"items"`
	Payments      []receiptView   `json:"payments"`
}

func toOrderView(lang i18n.Language, o order.Order) orderView {
	v := orderView{
		ID:            o.ID,
		Customer:      o.Customer,
		Date:          o.Date.Format(dateLayout),
		Status:        string(o.Status),
		StatusLabel:   i18n.OrderStatusLabel(lang, o.Status),
		Delivery:      string(o.Delivery),
		DeliveryLabel: i18n.DeliveryStatusLabel(lang, o.Delivery),
		Total:         toMoney(o.Total),
		Paid:          toMoney(o.Paid),
		Due:           toMoney(o.Due()),
		Items:         make([]orderItemView, 0, len(o.Items)),
		Payments:      make([]receiptView, 0, len(o.Payments)),
	}
	for _, r := range o.Payments {
		v.Payments = append(v.Payments, toReceiptView(lang, r))
	}
	for _, it := range o.Items {
		v.Items = append(v.Items, orderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     toMoney(it.Price),
			Quantity:  it.Quantity,
			LineTotal: toMoney(it.LineTotal()),
		})
	}
	return v
}

func toOrderViews(lang i18n.Language, orders []order.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(lang, o))
	}
	return out
}

type summaryView struct {
	TotalSales       money `json:"total_sales"`
	PendingOrders    int   `json:"pending_orders"`
	ProcessingOrders int   `json:"processing_orders"`
	CompletedOrders  int   `json:"completed_orders"`
	OutstandingDues  money `json:"outstanding_dues"`
	PendingReturns   int   `json:"pending_returns"`
}

type returnItemView struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Price       money  `json:"price"`
	Reason      string `json:"reason"`
	ReasonLabel string `json:"reason_label"`
}

type returnView struct {
	ID           string           `json:"id"`
	OrderID      string           `json:"order_id"`
	Customer     string           `json:"customer"`
	Date         string           `json:"date"`
	Amount       money            `json:"amount"`
	Status       string           `json:"status"`
	StatusLabel  string           `json:"status_label"`
	Note         string           `json:"note,omitempty"`
	RejectReason string           `json:"reject_reason,omitempty"`
	Items        []returnItemView `json:"items"`
}

func toReturnView(lang i18n.Language, r returns.Return) returnView {
	v := returnView{
		ID:           r.ID,
		OrderID:      r.OrderID,
		Customer:     r.Customer,
		Date:         r.Date.Format(dateLayout),
		Amount:       toMoney(r.Amount),
		Status:       string(r.Status),
		StatusLabel:  i18n.ReturnStatusLabel(lang, r.Status),
		Note:         r.Note,
		RejectReason: r.RejectReason,
		Items:        make([]returnItemView, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		v.Items = append(v.Items, returnItemView{
			Name:        it.Name,
			Quantity:    it.Quantity,
			Price:       toMoney(it.Price),
			Reason:      string(it.Reason),
			ReasonLabel: i18n.ReturnReasonLabel(lang, it.Reason),
		})
	}
	return v
}

type padView struct {
	Expression string `json:"expression"`
	State      string `json:"state"`
	Result     *money `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
}

func toPadView(lang i18n.Language, p *calc.Pad) padView {
	v := padView{Expression: p.Expression(), State: p.State().String()}
	if r, ok := p.Result(); ok {
		m := toMoney(r)
		v.Result = &m
	}
	if err := p.Err(); err != nil {
		v.Error = errorMessage(lang, err)
	}
	return v
}

type recordView struct {
	ID         string          `json:"id"`
	Expression string          `json:"expression"`
	Result     decimal.Decimal `json:"result"`
	At         time.Time       `json:"at"`
}

func toRecordViews(recs []calc.CalculationRecord) []recordView {
	out := make([]recordView, 0, len(recs))
	for _, r := range recs {
		out = append(out, recordView{ID: r.ID.String(), Expression: r.Expression, Result: r.Result, At: r.At})
	}
	return out
}

type entryView struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      money     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type billView struct {
	Entries []entryView `json:"entries"`
	Total   money       `json:"total"`
}

func toEntryView(e billing.BillingEntry) entryView {
	return entryView{ID: e.ID.String(), Description: e.Description, Amount: toMoney(e.Amount), CreatedAt: e.CreatedAt}
}

func toBillView(l *billing.Ledger) billView {
	v := billView{Entries: make([]entryView, 0, l.Len()), Total: toMoney(l.Total())}
	for _, e := range l.Entries() {
		v.Entries = append(v.Entries, toEntryView(e))
	}
	return v
}

type receiptView struct {
	ReceiptID   string    `json:"receipt_id"`
	Amount      money     `json:"amount"`
	Method      string    `json:"method"`
	MethodLabel string    `json:"method_label"`
	At          time.Time `json:"at"`
}

func toReceiptView(lang i18n.Language, r billing.PaymentReceipt) receiptView {
	return receiptView{
		ReceiptID:   r.ID.String(),
		Amount:      toMoney(r.Amount),
		Method:      string(r.Method),
		MethodLabel: i18n.PaymentMethodLabel(lang, r.Method),
		At:          r.At,
	}
}

type paymentView struct {
	receiptView
	BillTotal money `json:"bill_total"`
}

func toPaymentView(lang i18n.Language, p billingapp.PaymentResult) paymentView {
	return paymentView{receiptView: toReceiptView(lang, p.Receipt), BillTotal: toMoney(p.BillTotal)}
}

type orderPaymentView struct {
	OrderID  string `json:"order_id"`
	Customer string `json:"customer"`
	receiptView
}
