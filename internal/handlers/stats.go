package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adventcare/registry-backend/internal/services"
)

// StatsHandler serves registration totals for the admin dashboard.
type StatsHandler struct {
	stats  *services.StatsService
	logger *logrus.Logger
}

func NewStatsHandler(stats *services.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

// GetStats handles GET /api/v1/stats (admin only)
func (h *StatsHandler) GetStats(c *gin.Context) {
	counts, err := h.stats.GetStatusCounts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      counts,
		"timestamp": time.Now().UTC(),
	})
}
