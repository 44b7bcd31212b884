// Package store persists analysis results to Postgres. Queries are written
// by hand in the generated-code shape: one const statement plus a typed
// params struct per query.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	// Postgres driver, registered for database/sql.
	_ "github.com/lib/pq"

	"github.com/mcggEz/backend-gradalyze-capstone/internal/archetype"
	"github.com/mcggEz/backend-gradalyze-capstone/internal/pipeline"
)

type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

// Store implements pipeline.Store over the query layer: the full record is
// upserted as JSON and the archetype percentages are denormalized onto the
// user row for cheap reads.
type Store struct {
	queries *Queries
}

func NewStore(db *sql.DB) *Store {
	return &Store{queries: New(db)}
}

var _ pipeline.Store = (*Store)(nil)

// UpdateJobStatus records an analysis job lifecycle transition.
func (s *Store) UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.queries.UpdateJobStatus(ctx, UpdateJobStatusParams{Status: status, ID: id})
}

func (s *Store) SaveAnalysis(ctx context.Context, userID uuid.UUID, record *pipeline.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling analysis record: %w", err)
	}

	if err := s.queries.UpsertAnalysis(ctx, UpsertAnalysisParams{
		UserID: userID,
		Record: payload,
	}); err != nil {
		return fmt.Errorf("saving analysis record: %w", err)
	}

	if record.LearningArchetype == nil {
		return nil
	}

	pct := record.LearningArchetype.Percentages
	if err := s.queries.UpdateUserArchetype(ctx, UpdateUserArchetypeParams{
		PrimaryArchetype:        record.LearningArchetype.Primary,
		RealisticPercentage:     pct[archetype.Realistic],
		InvestigativePercentage: pct[archetype.Investigative],
		ArtisticPercentage:      pct[archetype.Artistic],
		SocialPercentage:        pct[archetype.Social],
		EnterprisingPercentage:  pct[archetype.Enterprising],
		ConventionalPercentage:  pct[archetype.Conventional],
		ID:                      userID,
	}); err != nil {
		return fmt.Errorf("updating user archetype columns: %w", err)
	}

	return nil
}
