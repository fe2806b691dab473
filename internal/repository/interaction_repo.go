package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alimalikali/pup-vision-sub000/internal/domain"
)

// ErrDuplicateAdmire indica que el solicitante ya habia admirado al target.
var ErrDuplicateAdmire = errors.New("duplicate admire")

// InteractionRepository define las mutaciones admire/pass sobre los sets
// espejo admired_users/admired_by, con el chequeo de mutualidad y la
// creacion del match dentro de una sola transaccion.
type InteractionRepository interface {
	Admire(ctx context.Context, requesterID, targetID string, score int) (domain.Match, bool, error)
	Pass(ctx context.Context, requesterID, targetID string) error
}

type PgInteractionRepository struct {
	pool *pgxpool.Pool
}

func NewPgInteractionRepository(pool *pgxpool.Pool) *PgInteractionRepository {
	return &PgInteractionRepository{pool: pool}
}

// Admire agrega targetID a admired_users del solicitante y requesterID a
// admired_by del target, detecta mutualidad y materializa el match, todo en
// una transaccion. Las filas de ambos perfiles se bloquean en orden canonico
// (user_id ascendente) para que dos admires mutuos casi simultaneos se
// serialicen; el indice unico sobre el par sin orden cubre el resto.
func (r *PgInteractionRepository) Admire(ctx context.Context, requesterID, targetID string, score int) (domain.Match, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.Match{}, false, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT user_id, admired_users, is_active
		FROM profiles
		WHERE user_id = ANY($1)
		ORDER BY user_id
		FOR UPDATE
	`, []string{requesterID, targetID})
	if err != nil {
		return domain.Match{}, false, err
	}
	admired := make(map[string][]string, 2)
	active := make(map[string]bool, 2)
	for rows.Next() {
		var (
			id       string
			users    []string
			isActive bool
		)
		if err := rows.Scan(&id, &users, &isActive); err != nil {
			rows.Close()
			return domain.Match{}, false, err
		}
		admired[id] = users
		active[id] = isActive
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return domain.Match{}, false, err
	}

	if _, ok := admired[requesterID]; !ok {
		return domain.Match{}, false, pgx.ErrNoRows
	}
	if ok := active[targetID]; !ok {
		return domain.Match{}, false, pgx.ErrNoRows
	}
	if containsID(admired[requesterID], targetID) {
		return domain.Match{}, false, ErrDuplicateAdmire
	}

	if _, err := tx.Exec(ctx, `
		UPDATE profiles SET admired_users = array_append(admired_users, $2), updated_at = now()
		WHERE user_id = $1
	`, requesterID, targetID); err != nil {
		return domain.Match{}, false, err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE profiles SET admired_by = array_append(admired_by, $2), updated_at = now()
		WHERE user_id = $1
	`, targetID, requesterID); err != nil {
		return domain.Match{}, false, err
	}

	mutual := containsID(admired[targetID], requesterID)
	var match domain.Match
	if mutual {
		now := time.Now().UTC()
		match = domain.Match{
			ID:                 uuid.NewString(),
			UserAID:            requesterID,
			UserBID:            targetID,
			CompatibilityScore: score,
			Status:             domain.MatchStatusMatched,
			InitiatedByID:      requesterID,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		ct, err := tx.Exec(ctx, `
			INSERT INTO matches (`+matchColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT ((LEAST(user_a_id, user_b_id)), (GREATEST(user_a_id, user_b_id))) DO NOTHING
		`, match.ID, match.UserAID, match.UserBID, match.CompatibilityScore, match.Status, match.InitiatedByID, match.CreatedAt, match.UpdatedAt)
		if err != nil {
			return domain.Match{}, false, err
		}
		if ct.RowsAffected() == 0 {
			// El par ya estaba emparejado por una carrera: reusar el existente.
			match, err = getMatchByPair(ctx, tx, requesterID, targetID)
			if err != nil {
				return domain.Match{}, false, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Match{}, false, err
	}
	return match, mutual, nil
}

// Pass retira la admiracion en ambos sentidos. Es idempotente: pasar a un
// target nunca admirado no falla.
func (r *PgInteractionRepository) Pass(ctx context.Context, requesterID, targetID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
		UPDATE profiles SET admired_users = array_remove(admired_users, $2), updated_at = now()
		WHERE user_id = $1
	`, requesterID, targetID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	if _, err := tx.Exec(ctx, `
		UPDATE profiles SET admired_by = array_remove(admired_by, $2), updated_at = now()
		WHERE user_id = $1
	`, targetID, requesterID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func getMatchByPair(ctx context.Context, tx pgx.Tx, userA, userB string) (domain.Match, error) {
	var m domain.Match
	err := tx.QueryRow(ctx, `
		SELECT `+matchColumns+`
		FROM matches
		WHERE LEAST(user_a_id, user_b_id) = LEAST($1::text, $2::text)
		  AND GREATEST(user_a_id, user_b_id) = GREATEST($1::text, $2::text)
	`, userA, userB).Scan(
		&m.ID,
		&m.UserAID,
		&m.UserBID,
		&m.CompatibilityScore,
		&m.Status,
		&m.InitiatedByID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
