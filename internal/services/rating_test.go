package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingDecisiveEqualPlayers(t *testing.T) {
	svc := NewRatingService()

	new1, new2 := svc.Update(1000, 1000, 1)
	assert.Equal(t, 1016, new1)
	assert.Equal(t, 984, new2)

	new1, new2 = svc.Update(1000, 1000, 0)
	assert.Equal(t, 984, new1)
	assert.Equal(t, 1016, new2)
}

func TestRatingDrawEqualPlayersUnchanged(t *testing.T) {
	svc := NewRatingService()

	new1, new2 := svc.Update(1200, 1200, 0.5)
	assert.Equal(t, 1200, new1)
	assert.Equal(t, 1200, new2)
}

func TestRatingUpsetPaysMore(t *testing.T) {
	svc := NewRatingService()

	// The underdog gains more from a win than a favorite would.
	underdogGain, _ := svc.Update(1000, 1400, 1)
	favoriteGain, _ := svc.Update(1400, 1000, 1)
	assert.Greater(t, underdogGain-1000, favoriteGain-1400)
}

func TestRatingZeroSum(t *testing.T) {
	svc := NewRatingService()

	new1, new2 := svc.Update(1300, 1100, 1)
	assert.Equal(t, 1300+1100, new1+new2)
}
