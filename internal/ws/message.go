package ws

const (
	MsgAuth            = "auth"
	MsgAnswerSubmitted = "answer_submitted"
	MsgChat            = "chat"
	MsgMatchStarted    = "match_started"
	MsgMatchFinished   = "match_finished"
	MsgPlayerLeft      = "player_left"
)

// InboundMessage is the envelope for everything a client sends. Unknown
// types are silently dropped.
type InboundMessage struct {
	Type    string `json:"type"`
	UserID  uint   `json:"user_id,omitempty"`
	MatchID uint   `json:"match_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProblemPayload is the problem as shown to both players when a match
// starts. The answer is deliberately not part of it.
type ProblemPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
	Category    string `json:"category"`
}

type MatchStartedEvent struct {
	Type            string         `json:"type"`
	MatchID         uint           `json:"match_id"`
	Player1ID       uint           `json:"player1_id"`
	Player2ID       uint           `json:"player2_id"`
	Player1Username string         `json:"player1_username"`
	Player2Username string         `json:"player2_username"`
	Problem         ProblemPayload `json:"problem"`
}

type MatchFinishedEvent struct {
	Type           string `json:"type"`
	MatchID        uint   `json:"match_id"`
	WinnerID       *uint  `json:"winner_id"`
	Player1Correct bool   `json:"player1_correct"`
	Player2Correct bool   `json:"player2_correct"`
}

type PlayerLeftEvent struct {
	Type      string `json:"type"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

type ChatEvent struct {
	Type      string `json:"type"`
	UserID    uint   `json:"user_id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type AnswerSubmittedEvent struct {
	Type      string `json:"type"`
	UserID    uint   `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}
