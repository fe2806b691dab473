package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alimalikali/pup-vision-sub000/internal/service"
)

// DiscoverHandler expone el listado paginado de candidatos.
type DiscoverHandler struct {
	logger    *zap.Logger
	discovery *service.DiscoveryService
}

func NewDiscoverHandler(logger *zap.Logger, discovery *service.DiscoveryService) *DiscoverHandler {
	return &DiscoverHandler{
		logger:    logger,
		discovery: discovery,
	}
}

// Discover maneja GET /discover.
func (h *DiscoverHandler) Discover(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
		return
	}

	q := service.CandidateQuery{
		Gender:        c.Query("gender"),
		City:          c.Query("city"),
		State:         c.Query("state"),
		Education:     c.Query("education"),
		Profession:    c.Query("profession"),
		PurposeDomain: c.Query("purposeDomain"),
		Cursor:        c.Query("cursor"),
	}
	// El limit patologico se normaliza, no falla.
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			q.Limit = limit
		}
	}
	if raw := c.Query("ageMin"); raw != "" {
		ageMin, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid ageMin"})
			return
		}
		q.AgeMin = ageMin
	}
	if raw := c.Query("ageMax"); raw != "" {
		ageMax, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid ageMax"})
			return
		}
		q.AgeMax = ageMax
	}
	if raw := c.Query("interests"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				q.Interests = append(q.Interests, tag)
			}
		}
	}
	includeScore := c.Query("includeCompatibility")
	q.IncludeScore = includeScore == "true" || includeScore == "1"

	page, err := h.discovery.FetchCandidates(c.Request.Context(), claims.UserID, q)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "profile not found"})
		case errors.Is(err, service.ErrInvalidFilter):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid filter"})
		default:
			h.logger.Error("fetch candidates failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not fetch candidates"})
		}
		return
	}

	var cursor any
	if page.NextCursor != "" {
		cursor = page.NextCursor
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    page.Items,
		"pagination": gin.H{
			"cursor":  cursor,
			"hasMore": page.HasMore,
			"limit":   page.Limit,
		},
	})
}
