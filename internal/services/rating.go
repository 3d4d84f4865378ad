package services

import "math"

// eloK is the rating volatility constant.
const eloK = 32

type RatingService struct{}

func NewRatingService() *RatingService {
	return &RatingService{}
}

// Update applies the pairwise Elo formula and returns the new ratings.
// score1 is 1 when player1 won, 0 when player2 won, 0.5 for a draw;
// player2's score is always the complement.
func (s *RatingService) Update(rating1, rating2 int, score1 float64) (int, int) {
	expected1 := 1 / (1 + math.Pow(10, float64(rating2-rating1)/400))
	expected2 := 1 - expected1
	score2 := 1 - score1

	new1 := int(math.Round(float64(rating1) + eloK*(score1-expected1)))
	new2 := int(math.Round(float64(rating2) + eloK*(score2-expected2)))
	return new1, new2
}
