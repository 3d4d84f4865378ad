package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"
	"github.com/ghostblade1342/olimpiada--inf/internal/services"

	"github.com/gin-gonic/gin"
)

type ProblemHandler struct {
	problemService *services.ProblemService
}

func NewProblemHandler(problemService *services.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

type ProblemRequest struct {
	Title       string `json:"title" binding:"required" example:"Sum of numbers"`
	Description string `json:"description" binding:"required" example:"What is 2 + 2?"`
	Answer      string `json:"answer" binding:"required" example:"4"`
	Difficulty  int    `json:"difficulty" example:"1"`
	Category    string `json:"category" example:"Mathematics"`
	Tags        string `json:"tags" example:"arithmetic"`
}

// ListProblems godoc
// @Summary      List problems
// @Description  Get problems (without answers), optionally filtered by category and difficulty
// @Tags         problems
// @Produce      json
// @Param        category query string false "Category filter"
// @Param        difficulty query int false "Difficulty filter (1-3)"
// @Success      200 {array} Problem
// @Router       /api/v1/problems [get]
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	difficulty, _ := strconv.Atoi(c.Query("difficulty"))

	problems, err := h.problemService.ListProblems(c.Query("category"), difficulty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, problems)
}

// GetProblem godoc
// @Summary      Get a problem
// @Tags         problems
// @Produce      json
// @Param        id path int true "Problem ID"
// @Success      200 {object} Problem
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/problems/{id} [get]
func (h *ProblemHandler) GetProblem(c *gin.Context) {
	problemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem id"})
		return
	}

	problem, err := h.problemService.GetProblem(uint(problemID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, problem)
}

// CreateProblem godoc
// @Summary      Create a problem
// @Tags         problems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ProblemRequest true "Problem data"
// @Success      201 {object} Problem
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/problems [post]
func (h *ProblemHandler) CreateProblem(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	problem := models.Problem{
		Title:       req.Title,
		Description: req.Description,
		Answer:      req.Answer,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		Tags:        req.Tags,
		CreatedBy:   &userID,
	}
	if err := h.problemService.CreateProblem(&problem); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, problem)
}

// UpdateProblem godoc
// @Summary      Update a problem
// @Tags         problems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Problem ID"
// @Param        request body ProblemRequest true "Problem data"
// @Success      200 {object} Problem
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/problems/{id} [put]
func (h *ProblemHandler) UpdateProblem(c *gin.Context) {
	problemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem id"})
		return
	}

	var req ProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	problem, err := h.problemService.UpdateProblem(uint(problemID), &models.Problem{
		Title:       req.Title,
		Description: req.Description,
		Answer:      req.Answer,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, problem)
}

// DeleteProblem godoc
// @Summary      Delete a problem
// @Tags         problems
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Problem ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/problems/{id} [delete]
func (h *ProblemHandler) DeleteProblem(c *gin.Context) {
	problemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem id"})
		return
	}

	if err := h.problemService.DeleteProblem(uint(problemID)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "problem deleted"})
}

// ImportProblems godoc
// @Summary      Import problems
// @Description  Bulk-insert problems from a JSON array
// @Tags         problems
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []ProblemRequest true "Problems"
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/problems/import [post]
func (h *ProblemHandler) ImportProblems(c *gin.Context) {
	userID := c.GetUint("user_id")

	var problems []models.Problem
	if err := c.ShouldBindJSON(&problems); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	imported := h.problemService.ImportProblems(problems, userID)
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

// ExportProblems godoc
// @Summary      Export problems
// @Description  Download the full problem set as JSON, answers included
// @Tags         problems
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Problem
// @Router       /api/v1/problems/export [get]
func (h *ProblemHandler) ExportProblems(c *gin.Context) {
	problems, err := h.problemService.ExportProblems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="problems.json"`)
	c.JSON(http.StatusOK, problems)
}
