package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/server/http/dto"
	"github.com/kiralago/storefront/internal/server/http/middleware"
	"github.com/kiralago/storefront/internal/session"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) session.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return session.Identity{}
	}
	identity, _ := val.(session.Identity)
	return identity
}

// CurrentToken extracts the raw session token from context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.TokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}

func userResponse(usr *model.User, pictureURL string) dto.UserResponse {
	return dto.UserResponse{
		ID:            usr.ID,
		Username:      usr.Username,
		Email:         usr.Email,
		Address:       usr.Address,
		Phone:         usr.Phone,
		ProfilePicURL: pictureURL,
	}
}

func cartItemResponses(items []model.CartItem) []dto.CartItemResponse {
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.CartItemResponse{
			LineID:    item.LineID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}
	return out
}

func productResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}
	return out
}
