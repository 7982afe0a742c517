package memory

import (
	"context"
	"testing"
	"time"

	"carv-arcade-service/internal/domain"
)

func TestQuestionBankCaches(t *testing.T) {
	loader := &countingLoader{
		QuestionLoader: NewStaticQuestionLoader(testQuestions()),
	}
	bank := NewQuestionBank(loader, time.Minute)

	if _, _, err := bank.Lookup(context.Background(), 1); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := bank.List(context.Background(), domain.TopicBlockchain, domain.DifficultyEasy, 2); err != nil {
		t.Fatalf("list: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestListFiltersAndCaps(t *testing.T) {
	bank := NewQuestionBank(NewStaticQuestionLoader(testQuestions()), time.Minute)

	questions, err := bank.List(context.Background(), domain.TopicBlockchain, domain.DifficultyEasy, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	seen := map[int]bool{}
	for _, q := range questions {
		if q.Topic != domain.TopicBlockchain || q.Difficulty != domain.DifficultyEasy {
			t.Fatalf("category filter leaked %+v", q)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}

	// Asking for more than exist returns all matches.
	all, _ := bank.List(context.Background(), domain.TopicBlockchain, domain.DifficultyEasy, 50)
	if len(all) != 3 {
		t.Fatalf("expected all 3 matches, got %d", len(all))
	}

	none, _ := bank.List(context.Background(), domain.TopicTechnical, domain.DifficultyHard, 5)
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestLookupUnknownQuestion(t *testing.T) {
	bank := NewQuestionBank(NewStaticQuestionLoader(testQuestions()), time.Minute)

	_, ok, err := bank.Lookup(context.Background(), 999)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Fatalf("expected unknown question")
	}
}

type countingLoader struct {
	QuestionLoader
	calls int
}

func (l *countingLoader) LoadQuestions(ctx context.Context) ([]domain.FullQuestion, error) {
	l.calls++
	return l.QuestionLoader.LoadQuestions(ctx)
}

func testQuestions() []domain.FullQuestion {
	mk := func(id int, topic domain.Topic, difficulty domain.Difficulty, answer int) domain.FullQuestion {
		return domain.FullQuestion{
			Question: domain.Question{
				ID:         id,
				Topic:      topic,
				Difficulty: difficulty,
				Text:       "q",
				Options:    []string{"a", "b", "c", "d"},
			},
			AnswerIndex: answer,
		}
	}
	return []domain.FullQuestion{
		mk(1, domain.TopicBlockchain, domain.DifficultyEasy, 0),
		mk(2, domain.TopicBlockchain, domain.DifficultyEasy, 1),
		mk(3, domain.TopicBlockchain, domain.DifficultyEasy, 2),
		mk(4, domain.TopicProjects, domain.DifficultyMedium, 3),
	}
}
