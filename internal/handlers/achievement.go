package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghostblade1342/olimpiada--inf/internal/services"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementService *services.AchievementService
}

func NewAchievementHandler(achievementService *services.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService}
}

// ListAchievements godoc
// @Summary      List achievement definitions
// @Tags         achievements
// @Produce      json
// @Success      200 {array} Achievement
// @Router       /api/v1/achievements [get]
func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	achievements, err := h.achievementService.ListAchievements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, achievements)
}

// UserAchievements godoc
// @Summary      List a user's earned achievements
// @Tags         achievements
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {array} services.EarnedAchievement
// @Router       /api/v1/users/{id}/achievements [get]
func (h *AchievementHandler) UserAchievements(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	earned, err := h.achievementService.UserAchievements(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, earned)
}
