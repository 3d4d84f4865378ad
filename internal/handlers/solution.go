package handlers

import (
	"net/http"

	"github.com/ghostblade1342/olimpiada--inf/internal/services"

	"github.com/gin-gonic/gin"
)

type SolutionHandler struct {
	solutionService *services.SolutionService
}

func NewSolutionHandler(solutionService *services.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

type SubmitSolutionRequest struct {
	ProblemID uint   `json:"problem_id" binding:"required" example:"1"`
	Answer    string `json:"answer" binding:"required" example:"4"`
	TimeSpent int    `json:"time_spent" example:"25"`
}

// SubmitSolution godoc
// @Summary      Submit a practice solution
// @Description  Check the answer, award rating/XP and update stats
// @Tags         solutions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitSolutionRequest true "Solution"
// @Success      200 {object} services.SolutionResult
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/solutions [post]
func (h *SolutionHandler) SubmitSolution(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req SubmitSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.solutionService.Submit(userID, req.ProblemID, req.Answer, req.TimeSpent)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
