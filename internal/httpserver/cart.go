package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

type addLinesRequest struct {
	CartID string                 `json:"cartId"`
	Lines  []domain.CartLineInput `json:"lines" validate:"required,min=1,dive"`
}

type updateLinesRequest struct {
	Lines []domain.CartLineUpdate `json:"lines" validate:"required,min=1,dive"`
}

type removeLinesRequest struct {
	LineIDs []string `json:"lineIds" validate:"required,min=1,dive,required"`
}

// writeCart renders a possibly absent cart; nil means the cart is gone.
func writeCart(c *gin.Context, cart *domain.Cart) {
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *handlers) createCart(c *gin.Context) {
	cart, err := h.svc.CreateCart(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeCart(c, cart)
}

func (h *handlers) addToCart(c *gin.Context) {
	var req addLinesRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	cart, err := h.svc.AddToCart(c.Request.Context(), req.CartID, req.Lines)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.logger.Debug("http: lines added", zap.String("cart_id", cart.ID), zap.String(requestIDKey, c.GetString(requestIDKey)))
	writeCart(c, cart)
}

func (h *handlers) getCart(c *gin.Context) {
	cart, err := h.svc.GetCart(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeCart(c, cart)
}

func (h *handlers) updateCart(c *gin.Context) {
	var req updateLinesRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	cart, err := h.svc.UpdateCart(c.Request.Context(), c.Param("cartId"), req.Lines)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeCart(c, cart)
}

func (h *handlers) removeFromCart(c *gin.Context) {
	var req removeLinesRequest
	if err := bindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	cart, err := h.svc.RemoveFromCart(c.Request.Context(), c.Param("cartId"), req.LineIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeCart(c, cart)
}

func (h *handlers) checkout(c *gin.Context) {
	redirect, err := h.svc.CheckoutRedirect(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": redirect})
}
