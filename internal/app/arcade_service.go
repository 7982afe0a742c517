package app

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"carv-arcade-service/internal/domain"

	"github.com/google/uuid"
)

// NonceRegistry issues and single-use-redeems authentication challenges per address.
type NonceRegistry interface {
	// Issue stores a fresh nonce for address, replacing any prior one.
	Issue(ctx context.Context, address string) (string, error)
	// Consume deletes the stored nonce iff it matches and has not expired.
	// Returns domain.ErrInvalidNonce otherwise, leaving state untouched.
	Consume(ctx context.Context, address, nonce string) error
}

// QuestionBank serves sanitized question sets and answers key lookups.
type QuestionBank interface {
	// List returns up to count answer-stripped questions matching topic and
	// difficulty, randomly selected and ordered. Empty result is not an error.
	List(ctx context.Context, topic domain.Topic, difficulty domain.Difficulty, count int) ([]domain.Question, error)
	// Lookup fetches the full question (with answer key) by id.
	Lookup(ctx context.Context, id int) (domain.FullQuestion, bool, error)
}

// Ledger holds point balances and append-only event histories.
type Ledger interface {
	GetOrCreate(ctx context.Context, address string) (domain.Account, error)
	// Apply credits delta and appends event as one atomic unit.
	Apply(ctx context.Context, address string, delta int, event domain.Event) (domain.Account, error)
	Profile(ctx context.Context, address string) (domain.Profile, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// SignatureVerifier checks that signature was produced over message by the
// key behind address.
type SignatureVerifier interface {
	Verify(address, message, signature string) error
}

// LeaderboardSize caps the public leaderboard.
const LeaderboardSize = 10

// SubmitQuizRequest is the signed quiz submission payload. Score is the
// client-claimed total and is informational only; the server rescores Details.
type SubmitQuizRequest struct {
	Address        string
	Signature      string
	Nonce          string
	Score          int
	TotalQuestions int
	Details        []domain.QuizSubmissionDetail
}

// SpinRequest is the signed reward-spin payload.
type SpinRequest struct {
	Address   string
	Signature string
	Nonce     string
}

// ArcadeService contains the points-award use cases: nonce issuance, quiz
// submission with server-side rescoring, reward spins, and ledger reads.
type ArcadeService struct {
	nonces   NonceRegistry
	bank     QuestionBank
	ledger   Ledger
	verifier SignatureVerifier

	now  func() time.Time
	roll func() float64

	locks addressLocks

	mu          sync.Mutex
	subscribers map[chan []domain.LeaderboardEntry]struct{}
}

func NewArcadeService(nonces NonceRegistry, bank QuestionBank, ledger Ledger, verifier SignatureVerifier) *ArcadeService {
	return NewArcadeServiceWithClock(nonces, bank, ledger, verifier, time.Now, rand.Float64)
}

// NewArcadeServiceWithClock allows deterministic timestamps and spin rolls in tests.
func NewArcadeServiceWithClock(nonces NonceRegistry, bank QuestionBank, ledger Ledger, verifier SignatureVerifier, now func() time.Time, roll func() float64) *ArcadeService {
	return &ArcadeService{
		nonces:      nonces,
		bank:        bank,
		ledger:      ledger,
		verifier:    verifier,
		now:         now,
		roll:        roll,
		subscribers: make(map[chan []domain.LeaderboardEntry]struct{}),
	}
}

// IssueNonce hands out a fresh single-use challenge for address.
func (s *ArcadeService) IssueNonce(ctx context.Context, address string) (string, error) {
	return s.nonces.Issue(ctx, address)
}

// FetchQuestions returns an answer-stripped question set for the category.
func (s *ArcadeService) FetchQuestions(ctx context.Context, topic domain.Topic, difficulty domain.Difficulty, count int) ([]domain.Question, error) {
	return s.bank.List(ctx, topic, difficulty, count)
}

// CheckAnswer reports whether answerIndex is correct for questionID.
// Unknown question ids are simply incorrect, never an error.
func (s *ArcadeService) CheckAnswer(ctx context.Context, questionID, answerIndex int) (bool, error) {
	q, ok, err := s.bank.Lookup(ctx, questionID)
	if err != nil {
		return false, err
	}
	return ok && q.AnswerIndex == answerIndex, nil
}

// SubmitQuiz authorizes the request, rescores the submission server-side, and
// credits the verified score. The client-claimed score is never trusted.
func (s *ArcadeService) SubmitQuiz(ctx context.Context, req SubmitQuizRequest) (domain.QuizResult, error) {
	lock := s.locks.forAddress(req.Address)
	lock.Lock()
	defer lock.Unlock()

	if err := s.authorize(ctx, req.Address, req.Signature, req.Nonce, QuizMessagePrefix); err != nil {
		return domain.QuizResult{}, err
	}

	awarded, err := s.rescore(ctx, req.Details)
	if err != nil {
		return domain.QuizResult{}, err
	}
	if awarded != req.Score {
		log.Printf("quiz rescore mismatch for %s: claimed %d, verified %d", req.Address, req.Score, awarded)
	}

	account, err := s.ledger.Apply(ctx, req.Address, awarded, s.newEvent(domain.EventQuiz, awarded))
	if err != nil {
		return domain.QuizResult{}, err
	}

	s.broadcast(ctx)
	return domain.QuizResult{PointsAwarded: awarded, TotalPoints: account.TotalPoints}, nil
}

// Leaderboard returns the top accounts by points, descending.
func (s *ArcadeService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.ledger.Leaderboard(ctx, LeaderboardSize)
}

// Profile returns the account and its event history, creating the account if needed.
func (s *ArcadeService) Profile(ctx context.Context, address string) (domain.Profile, error) {
	if _, err := s.ledger.GetOrCreate(ctx, address); err != nil {
		return domain.Profile{}, err
	}
	return s.ledger.Profile(ctx, address)
}

// Subscribe returns a channel that receives leaderboard snapshots whenever a
// balance changes. The caller must invoke cancel to avoid leaks.
func (s *ArcadeService) Subscribe(ctx context.Context) (<-chan []domain.LeaderboardEntry, func(), error) {
	initial, err := s.ledger.Leaderboard(ctx, LeaderboardSize)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan []domain.LeaderboardEntry, 8)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel, nil
}

func (s *ArcadeService) broadcast(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.subscribers) == 0 {
		return
	}

	lb, err := s.ledger.Leaderboard(ctx, LeaderboardSize)
	if err != nil {
		log.Printf("leaderboard snapshot for broadcast failed: %v", err)
		return
	}
	for ch := range s.subscribers {
		select {
		case ch <- lb:
		default:
			// Drop the stale snapshot so slow consumers never block writers.
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}

func (s *ArcadeService) newEvent(typ domain.EventType, delta int) domain.Event {
	return domain.Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Delta:     delta,
		Timestamp: s.now(),
		TxHash:    nil,
	}
}
