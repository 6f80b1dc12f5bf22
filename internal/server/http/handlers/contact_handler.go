package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kiralago/storefront/internal/server/http/dto"
)

// ContactHandler accepts contact form submissions. Messages are only
// acknowledged and logged; there is no delivery pipeline behind them.
type ContactHandler struct {
	logger *slog.Logger
}

// NewContactHandler creates ContactHandler instance.
func NewContactHandler(logger *slog.Logger) *ContactHandler {
	return &ContactHandler{logger: logger}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	h.logger.Info("contact message received",
		slog.String("name", req.Name),
		slog.String("email", req.Email),
		slog.String("subject", req.Subject),
		slog.Int("message_len", len(req.Message)),
	)

	c.Status(http.StatusAccepted)
}
