package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
	"github.com/kiralago/storefront/internal/server/http/dto"
	"github.com/kiralago/storefront/internal/session"
)

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	facade         ProfileFacade
	sessions       session.Store
	maxUploadBytes int64
}

// NewProfileHandler creates ProfileHandler instance.
func NewProfileHandler(facade ProfileFacade, sessions session.Store, maxUploadBytes int64) *ProfileHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 2 << 20
	}
	return &ProfileHandler{facade: facade, sessions: sessions, maxUploadBytes: maxUploadBytes}
}

// Get handles GET /api/user/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	identity := CurrentIdentity(c)

	usr, err := h.facade.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, userResponse(usr, h.facade.PictureURL(usr.ProfilePic)))
}

// Update handles PUT /api/user/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	identity := CurrentIdentity(c)

	usr, err := h.facade.UpdateProfile(c.Request.Context(), identity.UserID, req.Email, req.Address, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		case errors.Is(err, domainErrors.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	h.refreshSession(c, usr)
	c.JSON(http.StatusOK, userResponse(usr, h.facade.PictureURL(usr.ProfilePic)))
}

// ChangePassword handles POST /api/user/profile/password.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	identity := CurrentIdentity(c)

	err := h.facade.ChangePassword(c.Request.Context(), identity.UserID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case domainErrors.IsPolicyError(err),
			errors.Is(err, domainErrors.ErrPasswordMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

// UploadPicture handles POST /api/user/profile/picture.
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	identity := CurrentIdentity(c)

	header, err := c.FormFile("profile_pic")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domainErrors.ErrNoFile.Error()})
		return
	}
	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": domainErrors.ErrFileTooLarge.Error()})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	usr, err := h.facade.UploadPicture(c.Request.Context(), identity.UserID, data, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoFile),
			errors.Is(err, domainErrors.ErrFileTooLarge),
			errors.Is(err, domainErrors.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	h.refreshSession(c, usr)
	c.JSON(http.StatusOK, userResponse(usr, h.facade.PictureURL(usr.ProfilePic)))
}

// refreshSession keeps the denormalized session bag in step with the row.
// A failed refresh only leaves stale display fields, so it is not fatal.
func (h *ProfileHandler) refreshSession(c *gin.Context, usr *model.User) {
	token := CurrentToken(c)
	if token == "" {
		return
	}
	_ = h.sessions.Refresh(c.Request.Context(), token, session.Identity{
		UserID:        usr.ID,
		Username:      usr.Username,
		Email:         usr.Email,
		ProfilePicURL: h.facade.PictureURL(usr.ProfilePic),
	})
}
