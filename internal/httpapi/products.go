package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	cart "github.com/dwikikusuma/vendor-dashboard/internal/cart/domain"
	catalog "github.com/dwikikusuma/vendor-dashboard/internal/catalog/domain"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	"github.com/gin-gonic/gin"
)

// pricingMode reads the mode used for displayed prices; empty means unit.
func pricingMode(raw string) (catalog.PricingMode, error) {
	if raw == "" {
		return catalog.PricingUnit, nil
	}
	mode, ok := catalog.ParsePricingMode(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", cart.ErrInvalidPricingMode, raw)
	}
	return mode, nil
}

func (h *Handler) listCategories(c *gin.Context) {
	type categoryView struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}

	var out []categoryView
	ok := h.withSession(c, func(s *session.Session) error {
		for _, cat := range catalog.Categories() {
			out = append(out, categoryView{ID: string(cat), Label: i18n.CategoryLabel(s.Language, cat)})
		}
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"categories": out})
	}
}

func (h *Handler) listProducts(c *gin.Context) {
	out := []productView{}
	ok := h.withSession(c, func(s *session.Session) error {
		mode, err := pricingMode(c.Query("mode"))
		if err != nil {
			return err
		}
		products, err := h.svc.Catalog.ListProducts(c.Request.Context(), c.Query("q"), c.Query("category"))
		if err != nil {
			return err
		}
		for _, p := range products {
			out = append(out, toProductView(s.Language, p, mode))
		}
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"products": out})
	}
}

func (h *Handler) getProduct(c *gin.Context) {
	var out productView
	ok := h.withSession(c, func(s *session.Session) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: product id %q", errBadRequest, c.Param("id"))
		}
		mode, err := pricingMode(c.Query("mode"))
		if err != nil {
			return err
		}
		p, err := h.svc.Catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			return err
		}
		out = toProductView(s.Language, p, mode)
		return nil
	})
	if ok {
		c.JSON(http.StatusOK, out)
	}
}
