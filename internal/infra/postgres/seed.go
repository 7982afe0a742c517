package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"carv-arcade-service/internal/domain"

	"github.com/uptrace/bun"
)

// SeedQuestions upserts the question set. Re-running is safe; existing rows
// are replaced by id.
func SeedQuestions(ctx context.Context, db *bun.DB, questions []domain.FullQuestion) error {
	for _, q := range questions {
		payload, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("marshal question %d: %w", q.ID, err)
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO questions (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`,
			q.ID, string(payload))
		if err != nil {
			return fmt.Errorf("seed question %d: %w", q.ID, err)
		}
	}
	return nil
}
