package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	billingapp "github.com/dwikikusuma/vendor-dashboard/internal/billing/app"
	invoicexlsx "github.com/dwikikusuma/vendor-dashboard/internal/billing/infra/xlsx"
	calcapp "github.com/dwikikusuma/vendor-dashboard/internal/calculator/app"
	cartapp "github.com/dwikikusuma/vendor-dashboard/internal/cart/app"
	catalogapp "github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/vendor-dashboard/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/vendor-dashboard/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/vendor-dashboard/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	ordermem "github.com/dwikikusuma/vendor-dashboard/internal/order/infra/memory"
	returnsapp "github.com/dwikikusuma/vendor-dashboard/internal/returns/app"
	returnsmem "github.com/dwikikusuma/vendor-dashboard/internal/returns/infra/memory"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	supportapp "github.com/dwikikusuma/vendor-dashboard/internal/support/app"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	catalogSvc := catalogapp.NewService(catalogmem.NewProductRepo(catalogmem.SampleProducts()))
	orderSvc := orderapp.NewService(ordermem.NewOrderRepo(ordermem.SampleOrders()))

	svc := Services{
		Catalog: catalogSvc,
		Cart:    cartapp.NewService(catalogSvc),
		Checkout: checkoutapp.NewService(
			checkoutadapter.NewCatalogServiceReader(catalogSvc),
			checkoutadapter.NewOrderServiceWriter(orderSvc),
			4,
		),
		Orders:     orderSvc,
		Returns:    returnsapp.NewService(returnsmem.NewReturnRepo(returnsmem.SampleReturns()), orderSvc),
		Billing:    billingapp.NewService(invoicexlsx.NewInvoiceWriter("Test Vendor", "INR"), node),
		Calculator: calcapp.NewService(),
		Support:    supportapp.NewService(),
	}

	return NewRouter(svc, Options{
		Sessions:           session.NewStore(session.Options{TTL: time.Hour, HistoryLimit: 10, IDs: node}),
		Tokens:             session.NewTokens("test-secret", time.Hour),
		Logger:             slog.New(slog.NewJSONHandler(io.Discard, nil)),
		CORSOrigins:        []string{"*"},
		InvoiceContentType: invoicexlsx.ContentType,
	})
}

type client struct {
	t     *testing.T
	h     http.Handler
	token string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	return rec
}

func (c *client) expect(rec *httptest.ResponseRecorder, code int, out any) {
	c.t.Helper()
	if rec.Code != code {
		c.t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			c.t.Fatalf("decode: %v: %s", err, rec.Body.String())
		}
	}
}

func newClient(t *testing.T, h http.Handler, lang string) *client {
	t.Helper()
	c := &client{t: t, h: h}

	var created struct {
		Token    string `json:"token"`
		Language string `json:"language"`
	}
	c.expect(c.do(http.MethodPost, "/v1/sessions", map[string]string{"language": lang}), http.StatusCreated, &created)
	if created.Token == "" {
		t.Fatal("no token issued")
	}
	c.token = created.Token
	return c
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	c := &client{t: t, h: r}
	c.expect(c.do(http.MethodGet, "/healthz", nil), http.StatusOK, nil)
	c.expect(c.do(http.MethodGet, "/readyz", nil), http.StatusOK, nil)
}

func TestSessionRequired(t *testing.T) {
	r := newTestRouter(t)
	c := &client{t: t, h: r}

	var resp errorResponse
	c.expect(c.do(http.MethodGet, "/v1/cart", nil), http.StatusUnauthorized, &resp)
	if resp.Error.Code != "UNAUTHENTICATED" {
		t.Fatalf("got %+v", resp)
	}

	c.token = "forged"
	c.expect(c.do(http.MethodGet, "/v1/cart", nil), http.StatusUnauthorized, nil)
}

func TestSessionLifecycle(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "hi")

	var s sessionView
	c.expect(c.do(http.MethodGet, "/v1/session", nil), http.StatusOK, &s)
	if s.Language != "hi" {
		t.Fatalf("got %+v", s)
	}

	c.expect(c.do(http.MethodPut, "/v1/session", map[string]string{"language": "en"}), http.StatusOK, &s)
	if s.Language != "en" {
		t.Fatalf("got %+v", s)
	}
	c.expect(c.do(http.MethodPut, "/v1/session", map[string]string{"language": "fr"}), http.StatusBadRequest, nil)

	c.expect(c.do(http.MethodDelete, "/v1/session", nil), http.StatusNoContent, nil)
	c.expect(c.do(http.MethodGet, "/v1/session", nil), http.StatusUnauthorized, nil)
}

func TestProducts(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "hi")

	var list struct {
		Products []productView `json:"products"`
	}
	c.expect(c.do(http.MethodGet, "/v1/products?category=spices&mode=box", nil), http.StatusOK, &list)
	if len(list.Products) != 3 {
		t.Fatalf("expected 3 spices, got %d", len(list.Products))
	}
	first := list.Products[0]
	if first.Name != "Tata Salt" || first.CategoryLabel != "मसाले" || !first.Price.Amount.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("got %+v", first)
	}

	c.expect(c.do(http.MethodGet, "/v1/products?category=toys", nil), http.StatusBadRequest, nil)
	c.expect(c.do(http.MethodGet, "/v1/products?mode=crate", nil), http.StatusBadRequest, nil)
	c.expect(c.do(http.MethodGet, "/v1/products/99", nil), http.StatusNotFound, nil)
	c.expect(c.do(http.MethodGet, "/v1/products/abc", nil), http.StatusBadRequest, nil)
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "en")

	var cv cartView
	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 1, "mode": "unit"}), http.StatusOK, &cv)
	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 1, "mode": "unit"}), http.StatusOK, &cv)
	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 1, "mode": "box"}), http.StatusOK, &cv)

	if len(cv.Lines) != 2 || cv.ItemCount != 3 {
		t.Fatalf("got %+v", cv)
	}
	if !cv.Subtotal.Amount.Equal(decimal.NewFromInt(650)) || cv.Subtotal.Display != "₹650" {
		t.Fatalf("expected subtotal 650, got %+v", cv.Subtotal)
	}

	c.expect(c.do(http.MethodPut, "/v1/cart/items", map[string]any{"product_id": 1, "mode": "unit", "quantity": 0}), http.StatusOK, &cv)
	if len(cv.Lines) != 1 || !cv.Subtotal.Amount.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("got %+v", cv)
	}

	var resp errorResponse
	c.expect(c.do(http.MethodPut, "/v1/cart/items", map[string]any{"product_id": 1, "mode": "box", "quantity": -2}), http.StatusBadRequest, &resp)
	if resp.Error.Message != "Quantity cannot be negative" {
		t.Fatalf("got %+v", resp)
	}

	c.expect(c.do(http.MethodDelete, "/v1/cart/items?product_id=1&mode=box", nil), http.StatusOK, &cv)
	if len(cv.Lines) != 0 || !cv.Subtotal.Amount.IsZero() {
		t.Fatalf("got %+v", cv)
	}
}

func TestCartRejectsLocalized(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "hi")

	var resp errorResponse
	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 8, "mode": "unit"}), http.StatusConflict, &resp)
	if resp.Error.Message != "स्टॉक में नहीं" {
		t.Fatalf("got %+v", resp)
	}

	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 99, "mode": "unit"}), http.StatusNotFound, nil)
	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 1, "mode": "crate"}), http.StatusBadRequest, nil)
}

func TestCheckout(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "en")

	c.expect(c.do(http.MethodGet, "/v1/checkout/quote", nil), http.StatusConflict, nil)

	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 2, "mode": "unit"}), http.StatusOK, nil)

	var q quoteView
	c.expect(c.do(http.MethodGet, "/v1/checkout/quote", nil), http.StatusOK, &q)
	if !q.Total.Amount.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("got %+v", q)
	}

	var o orderView
	c.expect(c.do(http.MethodPost, "/v1/checkout", map[string]string{"customer": "Meena Stores"}), http.StatusCreated, &o)
	if o.ID != "ORD005" || o.Status != "pending" || !o.Due.Amount.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("got %+v", o)
	}

	var cv cartView
	c.expect(c.do(http.MethodGet, "/v1/cart", nil), http.StatusOK, &cv)
	if len(cv.Lines) != 0 {
		t.Fatal("cart should be empty after checkout")
	}
}

func TestCheckedOutOrderIsFulfilledAndPaid(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "en")

	c.expect(c.do(http.MethodPost, "/v1/cart/items", map[string]any{"product_id": 2, "mode": "unit"}), http.StatusOK, nil)
	var o orderView
	c.expect(c.do(http.MethodPost, "/v1/checkout", map[string]string{"customer": "Meena Stores"}), http.StatusCreated, &o)

	path := "/v1/orders/" + o.ID
	c.expect(c.do(http.MethodPost, path+"/ship", nil), http.StatusConflict, nil)
	c.expect(c.do(http.MethodPost, path+"/status", map[string]string{"status": "processing"}), http.StatusOK, nil)
	c.expect(c.do(http.MethodPost, path+"/ship", nil), http.StatusOK, &o)
	if o.Status != "processing" || o.Delivery != "shipped" {
		t.Fatalf("after ship got %s/%s", o.Status, o.Delivery)
	}
	c.expect(c.do(http.MethodPost, path+"/confirm-delivery", nil), http.StatusOK, &o)
	if o.Status != "delivered" || o.Delivery != "delivered" {
		t.Fatalf("after confirm got %s/%s", o.Status, o.Delivery)
	}

	var paid struct {
		Order   orderView   `json:"order"`
		Receipt receiptView `json:"receipt"`
	}
	c.expect(c.do(http.MethodPost, path+"/payments", map[string]any{"amount": 100, "method": "cash"}), http.StatusCreated, &paid)
	if !paid.Order.Due.Amount.Equal(decimal.NewFromInt(80)) || len(paid.Order.Payments) != 1 || paid.Receipt.Method != "cash" {
		t.Fatalf("got %+v", paid)
	}

	var resp errorResponse
	c.expect(c.do(http.MethodPost, path+"/payments", map[string]any{"amount": "100", "method": "upi"}), http.StatusBadRequest, &resp)
	if resp.Error.Message != "Payment is more than the amount due" {
		t.Fatalf("got %+v", resp)
	}

	var list struct {
		Payments []orderPaymentView `json:"payments"`
	}
	c.expect(c.do(http.MethodGet, "/v1/payments", nil), http.StatusOK, &list)
	if len(list.Payments) != 1 || list.Payments[0].OrderID != o.ID || list.Payments[0].ReceiptID != paid.Receipt.ReceiptID {
		t.Fatalf("got %+v", list.Payments)
	}

	var dash struct {
		Summary summaryView `json:"summary"`
	}
	c.expect(c.do(http.MethodGet, "/v1/dashboard", nil), http.StatusOK, &dash)
	if !dash.Summary.OutstandingDues.Amount.Equal(decimal.NewFromInt(970)) {
		t.Fatalf("outstanding %s", dash.Summary.OutstandingDues.Amount)
	}
}

func TestOrdersAndDashboard(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "en")

	var dash struct {
		Summary      summaryView `json:"summary"`
		RecentOrders []orderView `json:"recent_orders"`
	}
	c.expect(c.do(http.MethodGet, "/v1/dashboard", nil), http.StatusOK, &dash)
	if !dash.Summary.TotalSales.Amount.Equal(decimal.NewFromInt(8100)) || dash.Summary.PendingReturns != 2 {
		t.Fatalf("got %+v", dash.Summary)
	}
	if len(dash.RecentOrders) != 4 {
		t.Fatalf("expected 4 orders, got %d", len(dash.RecentOrders))
	}

	var list struct {
		Orders []orderView `json:"orders"`
	}
	c.expect(c.do(http.MethodGet, "/v1/orders?status=delivered", nil), http.StatusOK, &list)
	if len(list.Orders) != 2 {
		t.Fatalf("expected 2 delivered, got %d", len(list.Orders))
	}

	var o orderView
	c.expect(c.do(http.MethodPost, "/v1/orders/ORD003/confirm-delivery", nil), http.StatusOK, &o)
	if o.Status != "delivered" || o.Delivery != "delivered" || o.DeliveryLabel != "Delivered" {
		t.Fatalf("got %+v", o)
	}
	c.expect(c.do(http.MethodPost, "/v1/orders/ORD002/confirm-delivery", nil), http.StatusConflict, nil)
	c.expect(c.do(http.MethodPost, "/v1/orders/ORD002/status", map[string]string{"status": "processing"}), http.StatusOK, &o)
	c.expect(c.do(http.MethodPost, "/v1/orders/ORD002/status", map[string]string{"status": "pending"}), http.StatusConflict, nil)
	c.expect(c.do(http.MethodGet, "/v1/orders/ORD999", nil), http.StatusNotFound, nil)
}

func TestReturns(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "en")

	var ret returnView
	body := map[string]any{
		"order_id": "ORD004",
		"items":    []map[string]any{{"name": "Biscuits", "quantity": 2, "reason": "damaged"}},
	}
	c.expect(c.do(http.MethodPost, "/v1/returns", body), http.StatusCreated, &ret)
	if ret.ID != "RET004" || !ret.Amount.Amount.Equal(decimal.NewFromInt(60)) || ret.Items[0].ReasonLabel != "Damaged Packaging" {
		t.Fatalf("got %+v", ret)
	}

	c.expect(c.do(http.MethodPost, "/v1/returns/RET004/reject", map[string]string{"reason": "opened"}), http.StatusOK, &ret)
	if ret.Status != "rejected" || ret.RejectReason != "opened" {
		t.Fatalf("got %+v", ret)
	}
	c.expect(c.do(http.MethodPost, "/v1/returns/RET004/approve", nil), http.StatusConflict, nil)

	body["order_id"] = "ORD002"
	c.expect(c.do(http.MethodPost, "/v1/returns", body), http.StatusConflict, nil)
	body["order_id"] = "ORD999"
	c.expect(c.do(http.MethodPost, "/v1/returns", body), http.StatusNotFound, nil)

	var pending struct {
		Returns []returnView `json:"returns"`
	}
	c.expect(c.do(http.MethodGet, "/v1/returns?status=pending", nil), http.StatusOK, &pending)
	if len(pending.Returns) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending.Returns))
	}
}

func TestCalculatorToBill(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "en")

	var pad padView
	for _, k := range []string{"2", "5", "*", "1", "0", "="} {
		c.expect(c.do(http.MethodPost, "/v1/calculator/keys", map[string]string{"key": k}), http.StatusOK, &pad)
	}
	if pad.State != "evaluated" || pad.Result == nil || !pad.Result.Amount.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("got %+v", pad)
	}

	var committed struct {
		Entry entryView `json:"entry"`
		Bill  billView  `json:"bill"`
		Pad   padView   `json:"pad"`
	}
	c.expect(c.do(http.MethodPost, "/v1/bill/commit", nil), http.StatusCreated, &committed)
	if committed.Entry.Description != "25*10" || !committed.Bill.Total.Amount.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("got %+v", committed)
	}
	if committed.Pad.State != "empty" {
		t.Fatalf("pad should be cleared, got %+v", committed.Pad)
	}

	c.expect(c.do(http.MethodPost, "/v1/bill/commit", nil), http.StatusConflict, nil)

	var hist struct {
		History []recordView `json:"history"`
	}
	c.expect(c.do(http.MethodGet, "/v1/calculator/history", nil), http.StatusOK, &hist)
	if len(hist.History) != 1 || hist.History[0].Expression != "25*10" {
		t.Fatalf("got %+v", hist)
	}
}

func TestCalculatorErrors(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "hi")

	var pad padView
	c.expect(c.do(http.MethodPost, "/v1/calculator/evaluate", map[string]string{"expression": "5/0"}), http.StatusOK, &pad)
	if pad.State != "errored" || pad.Result != nil || pad.Error != "त्रुटि" {
		t.Fatalf("got %+v", pad)
	}

	c.expect(c.do(http.MethodPost, "/v1/calculator/keys", map[string]string{"key": "x"}), http.StatusBadRequest, nil)

	c.expect(c.do(http.MethodPost, "/v1/calculator/keys", map[string]string{"key": "C"}), http.StatusOK, &pad)
	if pad.State != "empty" || pad.Expression != "" {
		t.Fatalf("got %+v", pad)
	}
}

func TestBillEntriesPaymentsAndInvoice(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "en")

	c.expect(c.do(http.MethodPost, "/v1/bill/entries", map[string]any{"description": "Rice", "amount": 180}), http.StatusCreated, nil)
	c.expect(c.do(http.MethodPost, "/v1/bill/entries", map[string]any{"description": "Salt", "amount": "25.50"}), http.StatusCreated, nil)
	c.expect(c.do(http.MethodPost, "/v1/bill/entries", map[string]any{"description": "Oil", "amount": "abc"}), http.StatusBadRequest, nil)
	c.expect(c.do(http.MethodPost, "/v1/bill/entries", map[string]any{"description": " ", "amount": 10}), http.StatusBadRequest, nil)

	var bill billView
	c.expect(c.do(http.MethodGet, "/v1/bill", nil), http.StatusOK, &bill)
	if len(bill.Entries) != 2 || !bill.Total.Amount.Equal(decimal.RequireFromString("205.5")) {
		t.Fatalf("got %+v", bill)
	}

	var pay paymentView
	c.expect(c.do(http.MethodPost, "/v1/bill/payments", map[string]any{"amount": 100, "method": "upi"}), http.StatusCreated, &pay)
	if pay.MethodLabel != "UPI" || !pay.BillTotal.Amount.Equal(bill.Total.Amount) || pay.ReceiptID == "" {
		t.Fatalf("got %+v", pay)
	}
	c.expect(c.do(http.MethodPost, "/v1/bill/payments", map[string]any{"amount": 0, "method": "cash"}), http.StatusBadRequest, nil)

	rec := c.do(http.MethodPost, "/v1/bill/invoice", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("invoice: %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != invoicexlsx.ContentType || rec.Header().Get("X-Invoice-Number") == "" {
		t.Fatalf("headers: %v", rec.Header())
	}
	file, err := xlsx.OpenBinary(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("open invoice: %v", err)
	}
	if _, ok := file.Sheet[invoicexlsx.SheetName]; !ok {
		t.Fatal("invoice sheet missing")
	}

	c.expect(c.do(http.MethodGet, "/v1/bill", nil), http.StatusOK, &bill)
	if len(bill.Entries) != 0 {
		t.Fatal("bill should be cleared after invoicing")
	}
	c.expect(c.do(http.MethodPost, "/v1/bill/invoice", nil), http.StatusBadRequest, nil)
}

func TestSupport(t *testing.T) {
	r := newTestRouter(t)
	c := newClient(t, r, "hi")

	var panel struct {
		Announcements []announcementView `json:"announcements"`
		FAQ           []struct {
			Question string `json:"question"`
		} `json:"faq"`
	}
	c.expect(c.do(http.MethodGet, "/v1/support", nil), http.StatusOK, &panel)
	if len(panel.Announcements) != 3 || panel.Announcements[0].PriorityLabel != "महत्वपूर्ण" {
		t.Fatalf("got %+v", panel.Announcements)
	}
	if len(panel.FAQ) != 5 {
		t.Fatalf("expected 5 FAQ entries, got %d", len(panel.FAQ))
	}

	c.expect(c.do(http.MethodPost, "/v1/support/tickets", map[string]string{"subject": "UPI", "message": "failed"}), http.StatusCreated, nil)
	c.expect(c.do(http.MethodPost, "/v1/support/tickets", map[string]string{"subject": "", "message": "x"}), http.StatusBadRequest, nil)
}
