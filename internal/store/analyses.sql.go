package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const upsertAnalysis = `-- name: UpsertAnalysis :exec
INSERT INTO analyses (user_id, record)
VALUES ($1, $2)
ON CONFLICT (user_id)
DO UPDATE SET
    record = EXCLUDED.record,
    updated_at = CURRENT_TIMESTAMP
`

type UpsertAnalysisParams struct {
	UserID uuid.UUID
	Record json.RawMessage
}

func (q *Queries) UpsertAnalysis(ctx context.Context, arg UpsertAnalysisParams) error {
	_, err := q.db.ExecContext(ctx, upsertAnalysis, arg.UserID, arg.Record)
	return err
}

const getAnalysis = `-- name: GetAnalysis :one
SELECT record FROM analyses
WHERE user_id = $1
`

func (q *Queries) GetAnalysis(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	var record json.RawMessage
	err := q.db.QueryRowContext(ctx, getAnalysis, userID).Scan(&record)
	return record, err
}
