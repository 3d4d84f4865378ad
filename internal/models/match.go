package models

import "time"

// Match is a PvP duel over a single problem. While waiting, player2 and
// both answer fields stay null; once finished the row is never written
// again.
type Match struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Player1ID     uint       `gorm:"not null;index" json:"player1_id"`
	Player2ID     *uint      `gorm:"index" json:"player2_id,omitempty"`
	ProblemID     uint       `gorm:"not null" json:"problem_id"`
	Problem       Problem    `gorm:"foreignKey:ProblemID" json:"problem,omitempty"`
	Status        string     `gorm:"size:20;not null;default:'waiting'" json:"status"`
	Player1Answer *string    `gorm:"size:255" json:"player1_answer,omitempty"`
	Player2Answer *string    `gorm:"size:255" json:"player2_answer,omitempty"`
	Player1Time   *int       `json:"player1_time,omitempty"`
	Player2Time   *int       `json:"player2_time,omitempty"`
	WinnerID      *uint      `json:"winner_id,omitempty"`
	StartedAt     time.Time  `gorm:"autoCreateTime" json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

const (
	MatchStatusWaiting  = "waiting"
	MatchStatusActive   = "active"
	MatchStatusFinished = "finished"
)
