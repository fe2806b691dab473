package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alimalikali/pup-vision-sub000/internal/domain"
)

// MatchRepository expone la lectura de matches materializados.
// La creacion vive en InteractionRepository, dentro de la misma
// transaccion que el chequeo de mutualidad.
type MatchRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Match, error)
}

type PgMatchRepository struct {
	pool *pgxpool.Pool
}

func NewPgMatchRepository(pool *pgxpool.Pool) *PgMatchRepository {
	return &PgMatchRepository{pool: pool}
}

const matchColumns = `id, user_a_id, user_b_id, compatibility_score, status, initiated_by_id, created_at, updated_at`

func (r *PgMatchRepository) ListByUser(ctx context.Context, userID string) ([]domain.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(
			&m.ID,
			&m.UserAID,
			&m.UserBID,
			&m.CompatibilityScore,
			&m.Status,
			&m.InitiatedByID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
