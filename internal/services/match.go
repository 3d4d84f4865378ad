package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ghostblade1342/olimpiada--inf/internal/models"

	"gorm.io/gorm"
)

// MatchService owns the waiting → active → finished lifecycle. Every
// mutation of one match runs under that match's lock, so when both players
// submit at the same moment the read-write-resolve sequence still executes
// exactly once.
type MatchService struct {
	db           *gorm.DB
	rating       *RatingService
	achievements *AchievementService

	locksMu sync.Mutex
	locks   map[uint]*sync.Mutex
}

func NewMatchService(db *gorm.DB, rating *RatingService, achievements *AchievementService) *MatchService {
	return &MatchService{
		db:           db,
		rating:       rating,
		achievements: achievements,
		locks:        make(map[uint]*sync.Mutex),
	}
}

func (s *MatchService) matchLock(matchID uint) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[matchID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[matchID] = l
	}
	return l
}

// releaseLock drops a finished match's lock entry so the map does not grow
// for the life of the process. Any later caller gets a fresh mutex and then
// fails the active-status check.
func (s *MatchService) releaseLock(matchID uint) {
	s.locksMu.Lock()
	delete(s.locks, matchID)
	s.locksMu.Unlock()
}

// CreateMatch opens a waiting match for userID over a uniformly random
// problem.
func (s *MatchService) CreateMatch(userID uint) (*models.Match, error) {
	var problem models.Problem
	if err := s.db.Order("RANDOM()").First(&problem).Error; err != nil {
		return nil, errors.New("no problems available")
	}

	match := models.Match{
		Player1ID: userID,
		ProblemID: problem.ID,
		Status:    models.MatchStatusWaiting,
	}
	if err := s.db.Create(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// MatchStartInfo is everything the match_started broadcast needs.
type MatchStartInfo struct {
	Match           models.Match
	Player1Username string
	Player2Username string
	Problem         models.Problem
}

// JoinMatch attaches a second player to a waiting match and activates it.
func (s *MatchService) JoinMatch(userID, matchID uint) (*MatchStartInfo, error) {
	lock := s.matchLock(matchID)
	lock.Lock()
	defer lock.Unlock()

	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return nil, errors.New("match not found")
	}
	if match.Status != models.MatchStatusWaiting {
		return nil, errors.New("match already started or finished")
	}
	if match.Player1ID == userID {
		return nil, errors.New("cannot join your own match")
	}

	match.Player2ID = &userID
	match.Status = models.MatchStatusActive
	match.StartedAt = time.Now()
	if err := s.db.Save(&match).Error; err != nil {
		return nil, err
	}

	info := &MatchStartInfo{Match: match}
	s.db.First(&info.Problem, match.ProblemID)

	var p1, p2 models.User
	s.db.First(&p1, match.Player1ID)
	s.db.First(&p2, userID)
	info.Player1Username = p1.Username
	info.Player2Username = p2.Username
	return info, nil
}

// MatchResult is what a submission produced. Finished is true only for the
// single submission that completed the match.
type MatchResult struct {
	Finished       bool   `json:"match_finished"`
	WinnerID       *uint  `json:"winner_id,omitempty"`
	Player1Correct bool   `json:"player1_correct,omitempty"`
	Player2Correct bool   `json:"player2_correct,omitempty"`
	NewRating1     int    `json:"new_rating1,omitempty"`
	NewRating2     int    `json:"new_rating2,omitempty"`
	MatchID        uint   `json:"match_id"`
	Message        string `json:"message"`
}

// SubmitAnswer records one player's answer; when it is the second answer the
// match is resolved in the same critical section.
func (s *MatchService) SubmitAnswer(userID, matchID uint, answer string, timeSpent int) (*MatchResult, error) {
	lock := s.matchLock(matchID)
	lock.Lock()
	defer lock.Unlock()

	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return nil, errors.New("match not found")
	}
	if match.Status != models.MatchStatusActive {
		return nil, errors.New("match is not active")
	}

	isPlayer1 := userID == match.Player1ID
	isPlayer2 := match.Player2ID != nil && userID == *match.Player2ID
	if !isPlayer1 && !isPlayer2 {
		return nil, errors.New("you are not a participant of this match")
	}
	if (isPlayer1 && match.Player1Answer != nil) || (isPlayer2 && match.Player2Answer != nil) {
		return nil, errors.New("answer already submitted")
	}

	answer = strings.TrimSpace(answer)
	if isPlayer1 {
		match.Player1Answer = &answer
		match.Player1Time = &timeSpent
	} else {
		match.Player2Answer = &answer
		match.Player2Time = &timeSpent
	}
	if err := s.db.Save(&match).Error; err != nil {
		return nil, err
	}

	if match.Player1Answer == nil || match.Player2Answer == nil {
		return &MatchResult{MatchID: matchID, Message: "answer recorded, waiting for opponent"}, nil
	}
	return s.resolve(&match, isPlayer1)
}

// resolve decides the winner, updates both ratings and finishes the match.
// The caller holds the match lock and both answers are present, so this runs
// once per match.
func (s *MatchService) resolve(match *models.Match, lastFromPlayer1 bool) (*MatchResult, error) {
	var problem models.Problem
	if err := s.db.First(&problem, match.ProblemID).Error; err != nil {
		return nil, err
	}

	reference := normalizeAnswer(problem.Answer)
	p1Correct := normalizeAnswer(*match.Player1Answer) == reference
	p2Correct := normalizeAnswer(*match.Player2Answer) == reference

	player2ID := *match.Player2ID

	var winnerID *uint
	switch {
	case p1Correct && !p2Correct:
		winnerID = &match.Player1ID
	case p2Correct && !p1Correct:
		winnerID = &player2ID
	case p1Correct && p2Correct:
		// Faster answer wins. On equal times the player who submitted
		// first takes it, which is whoever did not trigger resolution.
		switch {
		case *match.Player1Time < *match.Player2Time:
			winnerID = &match.Player1ID
		case *match.Player2Time < *match.Player1Time:
			winnerID = &player2ID
		case lastFromPlayer1:
			winnerID = &player2ID
		default:
			winnerID = &match.Player1ID
		}
	}

	// Both ratings are read up front; only then is the finished status
	// persisted, in one transaction with the rating writes, so a match can
	// never end up finished with the ratings untouched.
	var p1, p2 models.User
	if err := s.db.First(&p1, match.Player1ID).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&p2, player2ID).Error; err != nil {
		return nil, err
	}

	score1 := 0.5
	if winnerID != nil {
		if *winnerID == match.Player1ID {
			score1 = 1
		} else {
			score1 = 0
		}
	}
	new1, new2 := s.rating.Update(p1.Rating, p2.Rating, score1)

	now := time.Now()
	match.Status = models.MatchStatusFinished
	match.WinnerID = winnerID
	match.FinishedAt = &now
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(match).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", p1.ID).Update("rating", new1).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", p2.ID).Update("rating", new2).Error
	})
	if err != nil {
		return nil, err
	}

	if winnerID != nil {
		s.achievements.Evaluate(*winnerID)
	}
	s.releaseLock(match.ID)

	return &MatchResult{
		Finished:       true,
		WinnerID:       winnerID,
		Player1Correct: p1Correct,
		Player2Correct: p2Correct,
		NewRating1:     new1,
		NewRating2:     new2,
		MatchID:        match.ID,
		Message:        "match finished",
	}, nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchSummary is one row of the active-matches listing.
type MatchSummary struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	Player1   string    `json:"player1"`
	Player2   string    `json:"player2"`
	Problem   string    `json:"problem"`
}

func (s *MatchService) ListActiveMatches() ([]MatchSummary, error) {
	var summaries []MatchSummary
	err := s.db.Table("matches m").
		Select("m.id, m.status, m.started_at, p1.username AS player1, COALESCE(p2.username, '') AS player2, p.title AS problem").
		Joins("JOIN users p1 ON m.player1_id = p1.id").
		Joins("LEFT JOIN users p2 ON m.player2_id = p2.id").
		Joins("LEFT JOIN problems p ON m.problem_id = p.id").
		Where("m.status IN ?", []string{models.MatchStatusWaiting, models.MatchStatusActive}).
		Order("m.started_at DESC").
		Limit(20).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// MatchDetails is the full state of one match, including both usernames.
type MatchDetails struct {
	models.Match
	Player1Username string `json:"player1_username"`
	Player2Username string `json:"player2_username,omitempty"`
}

func (s *MatchService) GetMatch(matchID uint) (*MatchDetails, error) {
	var match models.Match
	if err := s.db.Preload("Problem").First(&match, matchID).Error; err != nil {
		return nil, errors.New("match not found")
	}

	details := &MatchDetails{Match: match}

	var p1 models.User
	if err := s.db.First(&p1, match.Player1ID).Error; err == nil {
		details.Player1Username = p1.Username
	}
	if match.Player2ID != nil {
		var p2 models.User
		if err := s.db.First(&p2, *match.Player2ID).Error; err == nil {
			details.Player2Username = p2.Username
		}
	}
	return details, nil
}
