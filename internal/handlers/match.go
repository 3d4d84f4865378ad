package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghostblade1342/olimpiada--inf/internal/services"
	"github.com/ghostblade1342/olimpiada--inf/internal/ws"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
	hub          *ws.Hub
}

func NewMatchHandler(matchService *services.MatchService, hub *ws.Hub) *MatchHandler {
	return &MatchHandler{matchService: matchService, hub: hub}
}

type SubmitMatchAnswerRequest struct {
	Answer    string `json:"answer" binding:"required" example:"42"`
	TimeSpent int    `json:"time_spent" example:"30"`
}

// ListMatches godoc
// @Summary      List active matches
// @Description  Waiting and in-progress matches, newest first
// @Tags         matches
// @Produce      json
// @Success      200 {array} services.MatchSummary
// @Router       /api/v1/matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchService.ListActiveMatches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch godoc
// @Summary      Get match details
// @Tags         matches
// @Produce      json
// @Param        id path int true "Match ID"
// @Success      200 {object} services.MatchDetails
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	match, err := h.matchService.GetMatch(uint(matchID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}

// CreateMatch godoc
// @Summary      Create a match
// @Description  Open a waiting PvP match with a random problem
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	userID := c.GetUint("user_id")

	match, err := h.matchService.CreateMatch(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"match_id": match.ID,
		"message":  "match created, waiting for a second player",
	})
}

// JoinMatch godoc
// @Summary      Join a match
// @Description  Attach to a waiting match as the second player; broadcasts match_started to the match group
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Match ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/matches/{id}/join [post]
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	userID := c.GetUint("user_id")
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	info, err := h.matchService.JoinMatch(userID, uint(matchID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(info.Match.ID, ws.MatchStartedEvent{
		Type:            ws.MsgMatchStarted,
		MatchID:         info.Match.ID,
		Player1ID:       info.Match.Player1ID,
		Player2ID:       *info.Match.Player2ID,
		Player1Username: info.Player1Username,
		Player2Username: info.Player2Username,
		Problem: ws.ProblemPayload{
			Title:       info.Problem.Title,
			Description: info.Problem.Description,
			Difficulty:  info.Problem.Difficulty,
			Category:    info.Problem.Category,
		},
	}, nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "joined the match"})
}

// SubmitMatchAnswer godoc
// @Summary      Submit a match answer
// @Description  Record the caller's answer; when both answers are in, the match resolves and match_finished is broadcast
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Match ID"
// @Param        request body SubmitMatchAnswerRequest true "Answer"
// @Success      200 {object} services.MatchResult
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/matches/{id}/answer [post]
func (h *MatchHandler) SubmitMatchAnswer(c *gin.Context) {
	userID := c.GetUint("user_id")
	matchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	var req SubmitMatchAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.matchService.SubmitAnswer(userID, uint(matchID), req.Answer, req.TimeSpent)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if result.Finished {
		h.hub.Broadcast(result.MatchID, ws.MatchFinishedEvent{
			Type:           ws.MsgMatchFinished,
			MatchID:        result.MatchID,
			WinnerID:       result.WinnerID,
			Player1Correct: result.Player1Correct,
			Player2Correct: result.Player2Correct,
		}, nil)
	}

	c.JSON(http.StatusOK, result)
}
