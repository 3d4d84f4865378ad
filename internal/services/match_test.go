package services

import (
	"sync"
	"testing"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Problem{},
		&models.Solution{},
		&models.Match{},
		&models.UserStats{},
		&models.Achievement{},
		&models.UserAchievement{},
	))
	return db
}

func newTestMatchService(t *testing.T) (*MatchService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewMatchService(db, NewRatingService(), NewAchievementService(db)), db
}

func seedPlayers(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	p1 := models.User{Username: "alice", PasswordHash: "x", Rating: 1000, Role: models.RoleUser, Level: 1}
	p2 := models.User{Username: "bob", PasswordHash: "x", Rating: 1000, Role: models.RoleUser, Level: 1}
	require.NoError(t, db.Create(&p1).Error)
	require.NoError(t, db.Create(&p2).Error)
	return p1.ID, p2.ID
}

func seedProblem(t *testing.T, db *gorm.DB) models.Problem {
	t.Helper()
	problem := models.Problem{
		Title:       "Sum of numbers",
		Description: "What is 2 + 2?",
		Answer:      "4",
		Difficulty:  1,
		Category:    "Mathematics",
	}
	require.NoError(t, db.Create(&problem).Error)
	return problem
}

func startMatch(t *testing.T, svc *MatchService, db *gorm.DB) (uint, uint, uint) {
	t.Helper()
	p1, p2 := seedPlayers(t, db)
	seedProblem(t, db)

	match, err := svc.CreateMatch(p1)
	require.NoError(t, err)
	_, err = svc.JoinMatch(p2, match.ID)
	require.NoError(t, err)
	return match.ID, p1, p2
}

func userRating(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	return user.Rating
}

func TestCreateMatchWithoutProblems(t *testing.T) {
	svc, db := newTestMatchService(t)
	p1, _ := seedPlayers(t, db)

	_, err := svc.CreateMatch(p1)
	assert.EqualError(t, err, "no problems available")
}

func TestCreateAndJoinMatch(t *testing.T) {
	svc, db := newTestMatchService(t)
	p1, p2 := seedPlayers(t, db)
	problem := seedProblem(t, db)

	match, err := svc.CreateMatch(p1)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusWaiting, match.Status)
	assert.Nil(t, match.Player2ID)

	info, err := svc.JoinMatch(p2, match.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusActive, info.Match.Status)
	assert.Equal(t, p2, *info.Match.Player2ID)
	assert.Equal(t, "alice", info.Player1Username)
	assert.Equal(t, "bob", info.Player2Username)
	assert.Equal(t, problem.Title, info.Problem.Title)
}

func TestJoinMatchRejections(t *testing.T) {
	svc, db := newTestMatchService(t)
	p1, p2 := seedPlayers(t, db)
	seedProblem(t, db)

	match, err := svc.CreateMatch(p1)
	require.NoError(t, err)

	_, err = svc.JoinMatch(p2, 99999)
	assert.EqualError(t, err, "match not found")

	_, err = svc.JoinMatch(p1, match.ID)
	assert.EqualError(t, err, "cannot join your own match")

	_, err = svc.JoinMatch(p2, match.ID)
	require.NoError(t, err)

	third := models.User{Username: "carol", PasswordHash: "x", Rating: 1000, Role: models.RoleUser, Level: 1}
	require.NoError(t, db.Create(&third).Error)
	_, err = svc.JoinMatch(third.ID, match.ID)
	assert.EqualError(t, err, "match already started or finished")
}

func TestSubmitAnswerGuards(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, _ := startMatch(t, svc, db)

	outsider := models.User{Username: "carol", PasswordHash: "x", Rating: 1000, Role: models.RoleUser, Level: 1}
	require.NoError(t, db.Create(&outsider).Error)
	_, err := svc.SubmitAnswer(outsider.ID, matchID, "4", 10)
	assert.EqualError(t, err, "you are not a participant of this match")

	result, err := svc.SubmitAnswer(p1, matchID, "4", 10)
	require.NoError(t, err)
	assert.False(t, result.Finished)

	_, err = svc.SubmitAnswer(p1, matchID, "5", 12)
	assert.EqualError(t, err, "answer already submitted")

	// The stored answer is untouched by the rejected resubmission.
	var match models.Match
	require.NoError(t, db.First(&match, matchID).Error)
	require.NotNil(t, match.Player1Answer)
	assert.Equal(t, "4", *match.Player1Answer)
}

func TestSubmitAnswerWaitingMatchRejected(t *testing.T) {
	svc, db := newTestMatchService(t)
	p1, _ := seedPlayers(t, db)
	seedProblem(t, db)

	match, err := svc.CreateMatch(p1)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(p1, match.ID, "4", 10)
	assert.EqualError(t, err, "match is not active")
}

func TestResolveFasterCorrectWins(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, p2 := startMatch(t, svc, db)

	first, err := svc.SubmitAnswer(p1, matchID, "4", 30)
	require.NoError(t, err)
	assert.False(t, first.Finished)
	assert.Equal(t, "answer recorded, waiting for opponent", first.Message)

	result, err := svc.SubmitAnswer(p2, matchID, "4", 20)
	require.NoError(t, err)
	assert.True(t, result.Finished)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, p2, *result.WinnerID)
	assert.True(t, result.Player1Correct)
	assert.True(t, result.Player2Correct)
	assert.Equal(t, 984, result.NewRating1)
	assert.Equal(t, 1016, result.NewRating2)

	assert.Equal(t, 984, userRating(t, db, p1))
	assert.Equal(t, 1016, userRating(t, db, p2))

	var match models.Match
	require.NoError(t, db.First(&match, matchID).Error)
	assert.Equal(t, models.MatchStatusFinished, match.Status)
	assert.NotNil(t, match.FinishedAt)
}

func TestResolveCorrectBeatsIncorrect(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, p2 := startMatch(t, svc, db)

	_, err := svc.SubmitAnswer(p1, matchID, "5", 5)
	require.NoError(t, err)

	// Wrong but much faster still loses to the correct answer.
	result, err := svc.SubmitAnswer(p2, matchID, "4", 90)
	require.NoError(t, err)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, p2, *result.WinnerID)
	assert.False(t, result.Player1Correct)
	assert.True(t, result.Player2Correct)
}

func TestResolveBothIncorrectIsDraw(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, p2 := startMatch(t, svc, db)

	_, err := svc.SubmitAnswer(p1, matchID, "7", 10)
	require.NoError(t, err)

	result, err := svc.SubmitAnswer(p2, matchID, "8", 12)
	require.NoError(t, err)
	assert.True(t, result.Finished)
	assert.Nil(t, result.WinnerID)

	// A draw between equal ratings changes nothing.
	assert.Equal(t, 1000, userRating(t, db, p1))
	assert.Equal(t, 1000, userRating(t, db, p2))
}

func TestResolveEqualTimesFirstSubmitterWins(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, p2 := startMatch(t, svc, db)

	_, err := svc.SubmitAnswer(p1, matchID, "4", 25)
	require.NoError(t, err)
	result, err := svc.SubmitAnswer(p2, matchID, "4", 25)
	require.NoError(t, err)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, p1, *result.WinnerID)
}

func TestResolveNormalizesAnswers(t *testing.T) {
	svc, db := newTestMatchService(t)
	p1, p2 := seedPlayers(t, db)
	problem := models.Problem{
		Title:       "Capital",
		Description: "Capital of France?",
		Answer:      "Paris",
		Difficulty:  1,
		Category:    "Geography",
	}
	require.NoError(t, db.Create(&problem).Error)

	match, err := svc.CreateMatch(p1)
	require.NoError(t, err)
	_, err = svc.JoinMatch(p2, match.ID)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(p1, match.ID, "  PARIS  ", 10)
	require.NoError(t, err)
	result, err := svc.SubmitAnswer(p2, match.ID, "london", 8)
	require.NoError(t, err)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, p1, *result.WinnerID)
	assert.True(t, result.Player1Correct)
	assert.False(t, result.Player2Correct)
}

func TestConcurrentSubmissionsResolveOnce(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, p2 := startMatch(t, svc, db)

	results := make([]*MatchResult, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0], errs[0] = svc.SubmitAnswer(p1, matchID, "4", 30)
	}()
	go func() {
		defer wg.Done()
		results[1], errs[1] = svc.SubmitAnswer(p2, matchID, "4", 20)
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	finished := 0
	for _, r := range results {
		if r.Finished {
			finished++
		}
	}
	assert.Equal(t, 1, finished, "exactly one submission completes the match")

	// Ratings moved exactly once.
	assert.Equal(t, 984, userRating(t, db, p1))
	assert.Equal(t, 1016, userRating(t, db, p2))
}

func TestFinishedMatchReleasesLock(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, p2 := startMatch(t, svc, db)

	_, err := svc.SubmitAnswer(p1, matchID, "4", 10)
	require.NoError(t, err)

	svc.locksMu.Lock()
	_, held := svc.locks[matchID]
	svc.locksMu.Unlock()
	assert.True(t, held, "active match keeps its lock entry")

	result, err := svc.SubmitAnswer(p2, matchID, "4", 12)
	require.NoError(t, err)
	require.True(t, result.Finished)

	svc.locksMu.Lock()
	_, held = svc.locks[matchID]
	svc.locksMu.Unlock()
	assert.False(t, held, "finished match releases its lock entry")

	// A straggler after release still gets a clean rejection.
	_, err = svc.SubmitAnswer(p1, matchID, "4", 15)
	assert.EqualError(t, err, "match is not active")
}

func TestResolveMissingUserLeavesMatchUnfinished(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, p1, p2 := startMatch(t, svc, db)

	_, err := svc.SubmitAnswer(p1, matchID, "4", 10)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.User{}, p2).Error)

	_, err = svc.SubmitAnswer(p2, matchID, "4", 12)
	require.Error(t, err)

	// Resolution failed before the finished status or ratings were written:
	// the match is still active and the surviving player is untouched.
	var match models.Match
	require.NoError(t, db.First(&match, matchID).Error)
	assert.Equal(t, models.MatchStatusActive, match.Status)
	assert.Nil(t, match.FinishedAt)
	assert.Nil(t, match.WinnerID)
	assert.Equal(t, 1000, userRating(t, db, p1))
}

func TestResolveGrantsPvPWinAchievement(t *testing.T) {
	svc, db := newTestMatchService(t)
	require.NoError(t, db.Create(&models.Achievement{
		Name:             "Duelist",
		Description:      "Win a PvP match",
		RequirementType:  models.RequirementPvPWins,
		RequirementValue: 1,
	}).Error)

	matchID, p1, p2 := startMatch(t, svc, db)
	_, err := svc.SubmitAnswer(p1, matchID, "4", 10)
	require.NoError(t, err)
	result, err := svc.SubmitAnswer(p2, matchID, "9", 5)
	require.NoError(t, err)
	require.NotNil(t, result.WinnerID)
	require.Equal(t, p1, *result.WinnerID)

	var winnerGrants, loserGrants int64
	db.Model(&models.UserAchievement{}).Where("user_id = ?", p1).Count(&winnerGrants)
	db.Model(&models.UserAchievement{}).Where("user_id = ?", p2).Count(&loserGrants)
	assert.Equal(t, int64(1), winnerGrants)
	assert.Equal(t, int64(0), loserGrants)
}

func TestListActiveMatches(t *testing.T) {
	svc, db := newTestMatchService(t)
	p1, p2 := seedPlayers(t, db)
	seedProblem(t, db)

	waiting, err := svc.CreateMatch(p1)
	require.NoError(t, err)

	summaries, err := svc.ListActiveMatches()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, waiting.ID, summaries[0].ID)
	assert.Equal(t, models.MatchStatusWaiting, summaries[0].Status)
	assert.Equal(t, "alice", summaries[0].Player1)
	assert.Equal(t, "", summaries[0].Player2)

	_, err = svc.JoinMatch(p2, waiting.ID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(p1, waiting.ID, "4", 5)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(p2, waiting.ID, "4", 9)
	require.NoError(t, err)

	summaries, err = svc.ListActiveMatches()
	require.NoError(t, err)
	assert.Empty(t, summaries, "finished matches drop out of the listing")
}

func TestGetMatchDetails(t *testing.T) {
	svc, db := newTestMatchService(t)
	matchID, _, _ := startMatch(t, svc, db)

	details, err := svc.GetMatch(matchID)
	require.NoError(t, err)
	assert.Equal(t, "alice", details.Player1Username)
	assert.Equal(t, "bob", details.Player2Username)
	assert.Equal(t, "Sum of numbers", details.Problem.Title)

	_, err = svc.GetMatch(99999)
	assert.EqualError(t, err, "match not found")
}
