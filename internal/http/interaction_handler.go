package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alimalikali/pup-vision-sub000/internal/service"
)

// InteractionHandler expone admire/pass y el listado de matches.
type InteractionHandler struct {
	logger       *zap.Logger
	interactions *service.InteractionService
}

func NewInteractionHandler(logger *zap.Logger, interactions *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		logger:       logger,
		interactions: interactions,
	}
}

// Interact maneja POST /interactions.
func (h *InteractionHandler) Interact(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	var req struct {
		TargetUserID string `json:"targetUserId" binding:"required"`
		Action       string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid interaction request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	switch req.Action {
	case "admire":
		res, err := h.interactions.Admire(c.Request.Context(), claims.UserID, req.TargetUserID)
		if err != nil {
			h.writeInteractionError(c, err)
			return
		}
		body := gin.H{"success": true, "message": "admire recorded", "isMutual": res.IsMutual}
		if res.Match != nil {
			body["data"] = res.Match
		}
		c.JSON(http.StatusOK, body)
	case "pass":
		if err := h.interactions.Pass(c.Request.Context(), claims.UserID, req.TargetUserID); err != nil {
			h.writeInteractionError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "pass recorded"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid action"})
	}
}

// Matches maneja GET /matches.
func (h *InteractionHandler) Matches(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	matches, err := h.interactions.Matches(c.Request.Context(), claims.UserID)
	if err != nil {
		h.writeInteractionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": matches})
}

func (h *InteractionHandler) writeInteractionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfAdmire):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "cannot admire yourself"})
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "profile not found"})
	case errors.Is(err, service.ErrAlreadyAdmired):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "already admired"})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "too many requests"})
	default:
		h.logger.Error("interaction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not complete interaction"})
	}
}
