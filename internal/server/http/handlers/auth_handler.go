package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/server/http/dto"
	"github.com/kiralago/storefront/internal/server/http/middleware"
	"github.com/kiralago/storefront/internal/session"
)

// AuthHandler processes registration, login and logout.
type AuthHandler struct {
	facade   AuthFacade
	sessions session.Store
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, sessions session.Store) *AuthHandler {
	return &AuthHandler{facade: facade, sessions: sessions}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, err := h.facade.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrDuplicateUsername),
			errors.Is(err, domainErrors.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	h.startSession(c, usr)
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	usr, err := h.facade.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	h.startSession(c, usr)
}

// Logout handles POST /api/user/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := CurrentToken(c); token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
	}
	middleware.ClearSessionCookie(c)
	c.Status(http.StatusOK)
}

func (h *AuthHandler) startSession(c *gin.Context, usr *model.User) {
	pictureURL := h.facade.PictureURL(usr.ProfilePic)
	token, err := h.sessions.Create(c.Request.Context(), session.Identity{
		UserID:        usr.ID,
		Username:      usr.Username,
		Email:         usr.Email,
		ProfilePicURL: pictureURL,
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, userResponse(usr, pictureURL))
}
