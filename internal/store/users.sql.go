package store

import (
	"context"

	"github.com/google/uuid"
)

const updateUserArchetype = `-- name: UpdateUserArchetype :exec
UPDATE users SET
    primary_archetype = $1,
    archetype_realistic_percentage = $2,
    archetype_investigative_percentage = $3,
    archetype_artistic_percentage = $4,
    archetype_social_percentage = $5,
    archetype_enterprising_percentage = $6,
    archetype_conventional_percentage = $7,
    archetype_analyzed_at = CURRENT_TIMESTAMP
WHERE id = $8
`

type UpdateUserArchetypeParams struct {
	PrimaryArchetype        string
	RealisticPercentage     float64
	InvestigativePercentage float64
	ArtisticPercentage      float64
	SocialPercentage        float64
	EnterprisingPercentage  float64
	ConventionalPercentage  float64
	ID                      uuid.UUID
}

func (q *Queries) UpdateUserArchetype(ctx context.Context, arg UpdateUserArchetypeParams) error {
	_, err := q.db.ExecContext(ctx, updateUserArchetype,
		arg.PrimaryArchetype,
		arg.RealisticPercentage,
		arg.InvestigativePercentage,
		arg.ArtisticPercentage,
		arg.SocialPercentage,
		arg.EnterprisingPercentage,
		arg.ConventionalPercentage,
		arg.ID,
	)
	return err
}

const getUserIDByEmail = `-- name: GetUserIDByEmail :one
SELECT id FROM users
WHERE email = $1
`

func (q *Queries) GetUserIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRowContext(ctx, getUserIDByEmail, email).Scan(&id)
	return id, err
}
