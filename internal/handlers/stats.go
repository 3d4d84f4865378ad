package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghostblade1342/olimpiada--inf/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// PlatformStats godoc
// @Summary      Platform statistics
// @Tags         stats
// @Produce      json
// @Success      200 {object} services.PlatformStats
// @Router       /api/v1/stats [get]
func (h *StatsHandler) PlatformStats(c *gin.Context) {
	stats, err := h.statsService.PlatformStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UserStats godoc
// @Summary      Per-user statistics
// @Description  Rating, XP, accuracy, per-category breakdown and PvP record
// @Tags         stats
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} services.UserProfile
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/users/{id}/stats [get]
func (h *StatsHandler) UserStats(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	profile, err := h.statsService.UserStats(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Leaderboard godoc
// @Summary      Leaderboard
// @Description  Top 50 users by rating
// @Tags         stats
// @Produce      json
// @Success      200 {array} services.LeaderboardEntry
// @Router       /api/v1/leaderboard [get]
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	entries, err := h.statsService.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
