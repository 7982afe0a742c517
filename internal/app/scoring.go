package app

import (
	"context"

	"carv-arcade-service/internal/domain"
)

// rescore recomputes the true score of a submission from its per-question
// details. A detail earns exactly one point iff the question exists, the
// client claimed it correct, and the stored answer key confirms the submitted
// answer index. The client's Correct flag alone is never sufficient: a forged
// flag over a wrong answer index scores zero.
func (s *ArcadeService) rescore(ctx context.Context, details []domain.QuizSubmissionDetail) (int, error) {
	score := 0
	for _, detail := range details {
		q, ok, err := s.bank.Lookup(ctx, detail.QuestionID)
		if err != nil {
			return 0, err
		}
		if !ok || !detail.Correct {
			continue
		}
		if q.AnswerIndex == detail.AnswerIndex {
			score++
		}
	}
	return score, nil
}
