package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alimalikali/pup-vision-sub000/internal/domain"
)

// CandidateFilter describe el predicado de busqueda de candidatos.
// Los campos vacios no filtran. City y State son substring case-insensitive,
// Interests es "tiene alguno". DOBFrom/DOBTo acotan la fecha de nacimiento;
// los perfiles sin dob no se excluyen por edad.
type CandidateFilter struct {
	ExcludeUserID  string
	ExcludeUserIDs []string
	Gender         string
	City           string
	State          string
	Education      string
	Profession     string
	PurposeDomain  string
	Interests      []string
	DOBFrom        time.Time
	DOBTo          time.Time
	Cursor         string
	Limit          int
}

// ProfileRepository define el contrato de persistencia para perfiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) error
	GetByID(ctx context.Context, userID string) (domain.Profile, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]domain.Profile, error)
}

// PgProfileRepository implementa ProfileRepository usando pgxpool.
type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = `user_id, gender, dob, city, state, country,
	education, profession, religion,
	purpose_domain, purpose_archetype, purpose_modality,
	interests, smoke, alcohol, drugs,
	admired_users, admired_by, is_active, created_at, updated_at`

func (r *PgProfileRepository) Create(ctx context.Context, profile domain.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.UserID,
		profile.Gender,
		profile.DOB,
		profile.City,
		profile.State,
		profile.Country,
		profile.Education,
		profile.Profession,
		profile.Religion,
		profile.PurposeDomain,
		profile.PurposeArchetype,
		profile.PurposeModality,
		profile.Interests,
		profile.Smoke,
		profile.Alcohol,
		profile.Drugs,
		profile.AdmiredUsers,
		profile.AdmiredBy,
		profile.IsActive,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, userID string) (domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Profile{}, err
	}
	return profile, err
}

// ListCandidates trae una pagina de candidatos con orden estable
// (created_at DESC, user_id DESC de desempate) empezando estrictamente
// despues del cursor. El caller pide limit+1 filas para detectar si hay
// mas paginas sin un COUNT aparte.
func (r *PgProfileRepository) ListCandidates(ctx context.Context, filter CandidateFilter) ([]domain.Profile, error) {
	var (
		sb   strings.Builder
		args []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	sb.WriteString(`SELECT ` + profileColumns + ` FROM profiles WHERE is_active = TRUE`)
	if filter.ExcludeUserID != "" {
		sb.WriteString(` AND user_id <> ` + arg(filter.ExcludeUserID))
	}
	if len(filter.ExcludeUserIDs) > 0 {
		sb.WriteString(` AND NOT (user_id = ANY(` + arg(filter.ExcludeUserIDs) + `))`)
	}
	if filter.Gender != "" {
		sb.WriteString(` AND gender = ` + arg(filter.Gender))
	}
	if filter.City != "" {
		sb.WriteString(` AND city ILIKE ` + arg("%"+filter.City+"%"))
	}
	if filter.State != "" {
		sb.WriteString(` AND state ILIKE ` + arg("%"+filter.State+"%"))
	}
	if filter.Education != "" {
		sb.WriteString(` AND education = ` + arg(filter.Education))
	}
	if filter.Profession != "" {
		sb.WriteString(` AND profession = ` + arg(filter.Profession))
	}
	if filter.PurposeDomain != "" {
		sb.WriteString(` AND purpose_domain = ` + arg(filter.PurposeDomain))
	}
	if len(filter.Interests) > 0 {
		sb.WriteString(` AND interests && ` + arg(filter.Interests))
	}
	if !filter.DOBFrom.IsZero() {
		sb.WriteString(` AND (dob IS NULL OR dob >= ` + arg(filter.DOBFrom) + `)`)
	}
	if !filter.DOBTo.IsZero() {
		sb.WriteString(` AND (dob IS NULL OR dob <= ` + arg(filter.DOBTo) + `)`)
	}
	if filter.Cursor != "" {
		sb.WriteString(` AND (created_at, user_id) < (SELECT created_at, user_id FROM profiles WHERE user_id = ` + arg(filter.Cursor) + `)`)
	}
	sb.WriteString(` ORDER BY created_at DESC, user_id DESC`)
	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ` + arg(filter.Limit))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.UserID,
		&p.Gender,
		&p.DOB,
		&p.City,
		&p.State,
		&p.Country,
		&p.Education,
		&p.Profession,
		&p.Religion,
		&p.PurposeDomain,
		&p.PurposeArchetype,
		&p.PurposeModality,
		&p.Interests,
		&p.Smoke,
		&p.Alcohol,
		&p.Drugs,
		&p.AdmiredUsers,
		&p.AdmiredBy,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
