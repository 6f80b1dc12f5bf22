package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/server/http/dto"
)

// CheckoutHandler drives the review-then-submit checkout flow.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler creates CheckoutHandler instance.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Review handles GET /api/checkout.
func (h *CheckoutHandler) Review(c *gin.Context) {
	identity := CurrentIdentity(c)

	items, total, err := h.facade.CheckoutReview(c.Request.Context(), identity.UserID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CartResponse{Items: cartItemResponses(items), Total: total})
}

// Submit handles POST /api/checkout.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	identity := CurrentIdentity(c)

	order, err := h.facade.CheckoutSubmit(c.Request.Context(), identity.UserID, model.Payment{
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrIncompletePayment) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponse{
		Items:    cartItemResponses(order.Items),
		Total:    order.Total,
		PlacedAt: order.PlacedAt,
	})
}
