package handler

import (
	"errors"
	"net/http"
	"strings"

	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/auth/processor"
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	// AdminIDKey holds the authenticated admin's id as a string
	AdminIDKey = "Admin-ID"
	// AdminProfileKey holds the authenticated store.AdminProfile
	AdminProfileKey = "Admin-Profile"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware rejects requests without a bearer token for an active admin
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	profile, err := h.authProcessor.AuthenticateAdmin(ctx, tokenString)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrExpiredToken):
			apierrors.Unauthorized(c, "Token expired")
		case errors.Is(err, processor.ErrParseJWTToken),
			errors.Is(err, processor.ErrInvalidJWTToken),
			errors.Is(err, processor.ErrInvalidSubject):
			apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		case errors.Is(err, processor.ErrAdminNotFound),
			errors.Is(err, processor.ErrAdminInactive):
			apierrors.Unauthorized(c, "Unauthorized")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}

	c.Set(AdminIDKey, profile.ID.String())
	c.Set(AdminProfileKey, profile)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: profile.ID.String()},
	))
	c.Next()
}

// HandleGetCurrentAdmin returns the profile resolved by HandleJWTMiddleware
func (h *Handler) HandleGetCurrentAdmin(c *gin.Context) {
	value, ok := c.Get(AdminProfileKey)
	profile, isProfile := value.(store.AdminProfile)
	if !ok || !isProfile {
		apierrors.Unauthorized(c, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": profile})
}
