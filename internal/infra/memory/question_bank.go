package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"carv-arcade-service/internal/domain"

	"golang.org/x/sync/singleflight"
)

// QuestionLoader fetches the full question set from a backing store
// (Postgres, static content).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context) ([]domain.FullQuestion, error)
}

// QuestionBank caches the question set with TTL to avoid repeated store hits
// and serves the filtering/shuffling/answer-check operations on top of it.
type QuestionBank struct {
	loader QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	questions []domain.FullQuestion
	byID      map[int]domain.FullQuestion
	expiresAt time.Time
}

func NewQuestionBank(loader QuestionLoader, ttl time.Duration) *QuestionBank {
	return &QuestionBank{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// List returns up to count answer-stripped questions for the category,
// shuffle-and-sliced so repeated quizzes see fresh selections. An empty
// category yields an empty slice, not an error.
func (b *QuestionBank) List(ctx context.Context, topic domain.Topic, difficulty domain.Difficulty, count int) ([]domain.Question, error) {
	all, _, err := b.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.FullQuestion, 0, len(all))
	for _, q := range all {
		if q.Topic == topic && q.Difficulty == difficulty {
			matched = append(matched, q)
		}
	}

	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if count < 0 {
		count = 0
	}
	if count > len(matched) {
		count = len(matched)
	}

	questions := make([]domain.Question, 0, count)
	for _, q := range matched[:count] {
		questions = append(questions, q.Public())
	}
	return questions, nil
}

// Lookup fetches the full question, answer key included, by id.
func (b *QuestionBank) Lookup(ctx context.Context, id int) (domain.FullQuestion, bool, error) {
	_, byID, err := b.load(ctx)
	if err != nil {
		return domain.FullQuestion{}, false, err
	}
	q, ok := byID[id]
	return q, ok, nil
}

func (b *QuestionBank) load(ctx context.Context) ([]domain.FullQuestion, map[int]domain.FullQuestion, error) {
	now := b.clock()

	b.mu.RLock()
	if b.questions != nil && b.expiresAt.After(now) {
		questions, byID := b.questions, b.byID
		b.mu.RUnlock()
		return questions, byID, nil
	}
	b.mu.RUnlock()

	_, err, _ := b.sf.Do("questions", func() (interface{}, error) {
		now := b.clock()
		b.mu.RLock()
		if b.questions != nil && b.expiresAt.After(now) {
			b.mu.RUnlock()
			return nil, nil
		}
		b.mu.RUnlock()

		loaded, err := b.loader.LoadQuestions(ctx)
		if err != nil {
			return nil, err
		}
		byID := make(map[int]domain.FullQuestion, len(loaded))
		for _, q := range loaded {
			byID[q.ID] = q
		}

		b.mu.Lock()
		b.questions = loaded
		b.byID = byID
		b.expiresAt = now.Add(b.ttlWithJitter())
		b.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return nil, nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.questions, b.byID, nil
}

func (b *QuestionBank) ttlWithJitter() time.Duration {
	if b.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread refreshes
	jitterMax := int64(b.ttl) / 10
	return b.ttl + time.Duration(b.rnd.Int63n(jitterMax+1))
}

// StaticQuestionLoader serves a fixed slice (seed content, tests).
type StaticQuestionLoader struct {
	questions []domain.FullQuestion
}

func NewStaticQuestionLoader(questions []domain.FullQuestion) *StaticQuestionLoader {
	return &StaticQuestionLoader{questions: questions}
}

func (l *StaticQuestionLoader) LoadQuestions(context.Context) ([]domain.FullQuestion, error) {
	return l.questions, nil
}
