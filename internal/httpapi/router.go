// Package httpapi is the JSON transport the browser dashboard talks to.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	billingapp "github.com/dwikikusuma/vendor-dashboard/internal/billing/app"
	calcapp "github.com/dwikikusuma/vendor-dashboard/internal/calculator/app"
	cartapp "github.com/dwikikusuma/vendor-dashboard/internal/cart/app"
	catalogapp "github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/vendor-dashboard/internal/checkout/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	orderapp "github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	returnsapp "github.com/dwikikusuma/vendor-dashboard/internal/returns/app"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	supportapp "github.com/dwikikusuma/vendor-dashboard/internal/support/app"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Catalog    *catalogapp.Service
	Cart       *cartapp.Service
	Checkout   *checkoutapp.Service
	Orders     *orderapp.Service
	Returns    *returnsapp.Service
	Billing    *billingapp.Service
	Calculator *calcapp.Service
	Support    *supportapp.Service
}

type Options struct {
	Sessions        *session.Store
	Tokens          *session.Tokens
	DefaultLanguage i18n.Language
	CORSOrigins     []string
	Logger          *slog.Logger
	// InvoiceContentType is sent with invoice downloads.
	InvoiceContentType string
}

type Handler struct {
	svc  Services
	opts Options
}

func NewRouter(svc Services, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if !opts.DefaultLanguage.Valid() {
		opts.DefaultLanguage = i18n.English
	}

	h := &Handler{svc: svc, opts: opts}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(opts.Logger), cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "sessions": opts.Sessions.Len()})
	})

	v1 := r.Group("/v1")
	v1.POST("/sessions", h.createSession)

	auth := v1.Group("", h.requireSession)
	{
		auth.GET("/session", h.getSession)
		auth.PUT("/session", h.updateSession)
		auth.DELETE("/session", h.closeSession)

		auth.GET("/categories", h.listCategories)
		auth.GET("/products", h.listProducts)
		auth.GET("/products/:id", h.getProduct)

		auth.GET("/cart", h.getCart)
		auth.POST("/cart/items", h.addCartItem)
		auth.PUT("/cart/items", h.setCartItemQuantity)
		auth.DELETE("/cart/items", h.removeCartItem)
		auth.DELETE("/cart", h.clearCart)

		auth.GET("/checkout/quote", h.quote)
		auth.POST("/checkout", h.placeOrder)

		auth.GET("/dashboard", h.dashboard)
		auth.GET("/orders", h.listOrders)
		auth.GET("/orders/:id", h.getOrder)
		auth.POST("/orders/:id/status", h.advanceOrder)
		auth.POST("/orders/:id/ship", h.shipOrder)
		auth.POST("/orders/:id/confirm-delivery", h.confirmDelivery)
		auth.POST("/orders/:id/payments", h.recordOrderPayment)
		auth.GET("/payments", h.listPayments)

		auth.GET("/returns", h.listReturns)
		auth.POST("/returns", h.initiateReturn)
		auth.POST("/returns/:id/approve", h.approveReturn)
		auth.POST("/returns/:id/reject", h.rejectReturn)

		auth.GET("/calculator", h.getPad)
		auth.POST("/calculator/keys", h.pressKey)
		auth.POST("/calculator/evaluate", h.evaluate)
		auth.GET("/calculator/history", h.history)

		auth.GET("/bill", h.getBill)
		auth.POST("/bill/entries", h.addBillEntry)
		auth.POST("/bill/commit", h.commitCalculation)
		auth.DELETE("/bill", h.clearBill)
		auth.POST("/bill/payments", h.processPayment)
		auth.POST("/bill/invoice", h.generateInvoice)

		auth.GET("/support", h.supportPanel)
		auth.POST("/support/tickets", h.submitTicket)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Invoice-Number"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
