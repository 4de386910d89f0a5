package backend

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGFeedback records customer feedback in Postgres. The pipeline itself
// stores nothing; this is the one collaborator whose contract is storage.
type PGFeedback struct {
	db *pgxpool.Pool
}

func NewPGFeedback(db *pgxpool.Pool) *PGFeedback {
	return &PGFeedback{db: db}
}

func (f *PGFeedback) Record(ctx context.Context, emailID, feedback string) error {
	query := `
        INSERT INTO feedback (email_id, body, recorded_at)
        VALUES ($1, $2, NOW())
    `
	_, err := f.db.Exec(ctx, query, emailID, feedback)
	return err
}
