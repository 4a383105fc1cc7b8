package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Mode      string `json:"mode" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

func (h *Handler) getCart(c *gin.Context) {
	var v cartView
	ok := h.withSession(c, func(s *session.Session) error {
		v = toCartView(s.Language, s.Cart)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) addCartItem(c *gin.Context) {
	var v cartView
	ok := h.withSession(c, func(s *session.Session) error {
		var req cartItemRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		if err := h.svc.Cart.AddItem(c.Request.Context(), s.Cart, req.ProductID, catalog.PricingMode(req.Mode)); err != nil {
			return err
		}
		v = toCartView(s.Language, s.Cart)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) setCartItemQuantity(c *gin.Context) {
	var v cartView
	ok := h.withSession(c, func(s *session.Session) error {
		var req cartItemRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		if req.Quantity == nil {
			return fmt.Errorf("%w: quantity is required", errBadRequest)
		}
		mode, err := pricingMode(req.Mode)
		if err != nil {
			return err
		}
		if err := h.svc.Cart.SetItemQuantity(s.Cart, req.ProductID, mode, *req.Quantity); err != nil {
			return err
		}
		v = toCartView(s.Language, s.Cart)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) removeCartItem(c *gin.Context) {
	var v cartView
	ok := h.withSession(c, func(s *session.Session) error {
		id, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: product_id %q", errBadRequest, c.Query("product_id"))
		}
		mode, err := pricingMode(c.Query("mode"))
		if err != nil {
			return err
		}
		h.svc.Cart.RemoveItem(s.Cart, id, mode)
		v = toCartView(s.Language, s.Cart)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) clearCart(c *gin.Context) {
	var v cartView
	ok := h.withSession(c, func(s *session.Session) error {
		h.svc.Cart.ClearCart(s.Cart)
		v = toCartView(s.Language, s.Cart)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) quote(c *gin.Context) {
	var v quoteView
	ok := h.withSession(c, func(s *session.Session) error {
		q, err := h.svc.Checkout.Quote(c.Request.Context(), s.Cart)
		if err != nil {
			return err
		}
		v = toQuoteView(q)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, v)
	}
}

func (h *Handler) placeOrder(c *gin.Context) {
	var v orderView
	ok := h.withSession(c, func(s *session.Session) error {
		var req struct {
			Customer string `json:"customer"`
		}
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		o, err := h.svc.Checkout.PlaceOrder(c.Request.Context(), s.Cart, req.Customer)
		if err != nil {
			return err
		}
		v = toOrderView(s.Language, o)
		return nil
	})
	if ok {
		c.JSON(http.StatusCreated, v)
	}
}
