package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/server/http/dto"
)

// CatalogHandler serves the public product listings.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	h.respondList(c, h.facade.Products)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
	})
}

// ByCategory handles GET /api/category/:slug.
func (h *CatalogHandler) ByCategory(c *gin.Context) {
	products, name, err := h.facade.Category(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{Category: name, Products: productResponses(products)})
}

// NewArrivals handles GET /api/new-arrivals.
func (h *CatalogHandler) NewArrivals(c *gin.Context) {
	h.respondList(c, h.facade.NewArrivals)
}

// Bestsellers handles GET /api/bestsellers.
func (h *CatalogHandler) Bestsellers(c *gin.Context) {
	h.respondList(c, h.facade.Bestsellers)
}

// Offers handles GET /api/offers.
func (h *CatalogHandler) Offers(c *gin.Context) {
	h.respondList(c, h.facade.Offers)
}

// Discounted handles GET /api/discounted.
func (h *CatalogHandler) Discounted(c *gin.Context) {
	h.respondList(c, h.facade.Discounted)
}

func (h *CatalogHandler) respondList(c *gin.Context, list func(context.Context) ([]model.Product, error)) {
	products, err := list(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, productResponses(products))
}
