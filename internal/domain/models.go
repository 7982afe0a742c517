package domain

import "time"

// Topic categorizes quiz questions.
type Topic string

const (
	TopicBlockchain Topic = "Blockchain"
	TopicProjects   Topic = "Projects"
	TopicTokenomics Topic = "Tokenomics"
	TopicTechnical  Topic = "Technical"
)

// Difficulty grades quiz questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// EventType labels a ledger entry by what produced it.
type EventType string

const (
	EventQuiz EventType = "quiz"
	EventSpin EventType = "spin"
)

// Account tracks a wallet address's accumulated points.
type Account struct {
	Address     string `json:"address"`
	TotalPoints int    `json:"totalPoints"`
}

// Event is an immutable ledger entry recording one balance change.
// TxHash is reserved for on-chain settlement and is always nil for now.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Delta     int       `json:"delta"`
	Timestamp time.Time `json:"timestamp"`
	TxHash    *string   `json:"txHash"`
}

// Profile is an account plus its event history, most recent first.
type Profile struct {
	Address     string  `json:"address"`
	TotalPoints int     `json:"totalPoints"`
	Events      []Event `json:"events"`
}

// LeaderboardEntry is a snapshot-friendly view of an account.
type LeaderboardEntry struct {
	Address     string `json:"address"`
	TotalPoints int    `json:"totalPoints"`
}

// Question is the answer-stripped view served to clients.
type Question struct {
	ID         int        `json:"id"`
	Topic      Topic      `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Text       string     `json:"text"`
	Options    []string   `json:"options"`
}

// FullQuestion carries the answer key and never leaves the server.
type FullQuestion struct {
	Question
	AnswerIndex int `json:"answerIndex"`
}

// Public strips the answer key.
func (q FullQuestion) Public() Question {
	return q.Question
}

// QuizSubmissionDetail is one client-reported answer. The Correct flag is a
// hint only; scoring trusts the stored answer key against AnswerIndex.
type QuizSubmissionDetail struct {
	QuestionID       int     `json:"questionId"`
	AnswerIndex      int     `json:"answerIndex"`
	Correct          bool    `json:"correct"`
	TimeTakenSeconds float64 `json:"timeTakenSeconds"`
}

// QuizResult summarizes an accepted quiz submission.
type QuizResult struct {
	PointsAwarded int `json:"pointsAwarded"`
	TotalPoints   int `json:"totalPoints"`
}

// SpinResult summarizes a completed reward spin.
type SpinResult struct {
	Multiplier  int `json:"multiplier"`
	PointsDelta int `json:"pointsDelta"`
	TotalPoints int `json:"totalPoints"`
}
