package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alimalikali/pup-vision-sub000/internal/service"
)

// ProfileHandler expone la proyeccion publica de perfiles (solo lectura;
// el CRUD completo vive en otro servicio).
type ProfileHandler struct {
	logger    *zap.Logger
	discovery *service.DiscoveryService
}

func NewProfileHandler(logger *zap.Logger, discovery *service.DiscoveryService) *ProfileHandler {
	return &ProfileHandler{
		logger:    logger,
		discovery: discovery,
	}
}

// Me maneja GET /profiles/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}
	h.respondProfile(c, claims.UserID)
}

// GetByID maneja GET /profiles/:id.
func (h *ProfileHandler) GetByID(c *gin.Context) {
	if _, ok := GetAuthClaims(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}
	h.respondProfile(c, c.Param("id"))
}

func (h *ProfileHandler) respondProfile(c *gin.Context, userID string) {
	candidate, err := h.discovery.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "profile not found"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not fetch profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": candidate})
}
