package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/server/http/dto"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// View handles GET /api/cart.
func (h *CartHandler) View(c *gin.Context) {
	identity := CurrentIdentity(c)

	items, total, err := h.facade.Cart(c.Request.Context(), identity.UserID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CartResponse{Items: cartItemResponses(items), Total: total})
}

// Add handles POST /api/cart/items/:productID.
func (h *CartHandler) Add(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	identity := CurrentIdentity(c)

	line, err := h.facade.AddToCart(c.Request.Context(), identity.UserID, productID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"line_id": line.ID, "quantity": line.Quantity})
}

// Remove handles DELETE /api/cart/items/:lineID.
func (h *CartHandler) Remove(c *gin.Context) {
	lineID, err := strconv.ParseInt(c.Param("lineID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	identity := CurrentIdentity(c)

	if err := h.facade.RemoveFromCart(c.Request.Context(), identity.UserID, lineID); err != nil {
		if errors.Is(err, domainErrors.ErrCartLineNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	identity := CurrentIdentity(c)

	if err := h.facade.ClearCart(c.Request.Context(), identity.UserID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
