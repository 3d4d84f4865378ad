package handlers

import "github.com/ghostblade1342/olimpiada--inf/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Problem = models.Problem
type Match = models.Match
type Achievement = models.Achievement
