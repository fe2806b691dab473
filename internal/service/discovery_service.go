package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/alimalikali/pup-vision-sub000/internal/domain"
	"github.com/alimalikali/pup-vision-sub000/internal/repository"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidFilter   = errors.New("invalid filter")
)

const (
	defaultAgeMin   = 18
	defaultAgeMax   = 100
	defaultPageSize = 20
	maxPageSize     = 50
)

// CandidateQuery son los parametros de filtro y paginacion del discovery.
// Cursor es el user_id del ultimo candidato de la pagina anterior.
type CandidateQuery struct {
	AgeMin        int
	AgeMax        int
	Gender        string
	City          string
	State         string
	Education     string
	Profession    string
	PurposeDomain string
	Interests     []string
	Cursor        string
	Limit         int
	IncludeScore  bool
}

// CandidatePage es una pagina de candidatos con el cursor para la siguiente.
type CandidatePage struct {
	Items      []domain.Candidate
	NextCursor string
	HasMore    bool
	Limit      int
}

// DiscoveryService arma el predicado de busqueda, aplica el scoring y pagina
// por cursor sobre el store de perfiles.
type DiscoveryService struct {
	logger         *zap.Logger
	profiles       repository.ProfileRepository
	excludeDecided bool
}

// NewDiscoveryService crea el servicio. excludeDecided controla si los
// perfiles ya admirados por el solicitante reaparecen en el listado.
func NewDiscoveryService(logger *zap.Logger, profiles repository.ProfileRepository, excludeDecided bool) *DiscoveryService {
	return &DiscoveryService{
		logger:         logger,
		profiles:       profiles,
		excludeDecided: excludeDecided,
	}
}

// FetchCandidates devuelve una pagina de candidatos elegibles para el
// solicitante. Pide limit+1 filas al store: la fila extra solo senala que hay
// mas paginas y se recorta antes de responder.
func (s *DiscoveryService) FetchCandidates(ctx context.Context, requesterID string, q CandidateQuery) (CandidatePage, error) {
	requester, err := s.profiles.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CandidatePage{}, ErrProfileNotFound
		}
		return CandidatePage{}, err
	}
	if !requester.IsActive {
		return CandidatePage{}, ErrProfileNotFound
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	ageMin, ageMax := q.AgeMin, q.AgeMax
	if ageMin == 0 {
		ageMin = defaultAgeMin
	}
	if ageMax == 0 {
		ageMax = defaultAgeMax
	}
	if ageMin < 0 || ageMax < 0 || ageMin > ageMax {
		return CandidatePage{}, ErrInvalidFilter
	}

	now := time.Now().UTC()
	filter := repository.CandidateFilter{
		ExcludeUserID: requesterID,
		Gender:        q.Gender,
		City:          q.City,
		State:         q.State,
		Education:     q.Education,
		Profession:    q.Profession,
		PurposeDomain: q.PurposeDomain,
		Interests:     q.Interests,
		// El +1 en la cota inferior es deliberado: sin el, quien acaba de
		// cumplir ageMax quedaria afuera por truncamiento de la edad.
		DOBFrom: now.AddDate(-(ageMax + 1), 0, 0),
		DOBTo:   now.AddDate(-ageMin, 0, 0),
		Cursor:  q.Cursor,
		Limit:   limit + 1,
	}
	if s.excludeDecided {
		filter.ExcludeUserIDs = requester.AdmiredUsers
	}

	candidates, err := s.profiles.ListCandidates(ctx, filter)
	if err != nil {
		return CandidatePage{}, err
	}

	hasMore := len(candidates) > limit
	if hasMore {
		candidates = candidates[:limit]
	}
	nextCursor := ""
	if hasMore && len(candidates) > 0 {
		nextCursor = candidates[len(candidates)-1].UserID
	}

	items := make([]domain.Candidate, 0, len(candidates))
	for _, p := range candidates {
		c := domain.NewCandidate(p, now)
		if q.IncludeScore {
			score := domain.CompatibilityScore(requester, p)
			c.CompatibilityScore = &score
		}
		items = append(items, c)
	}

	return CandidatePage{
		Items:      items,
		NextCursor: nextCursor,
		HasMore:    hasMore,
		Limit:      limit,
	}, nil
}

// GetProfile devuelve la proyeccion publica de un perfil, con edad derivada.
func (s *DiscoveryService) GetProfile(ctx context.Context, userID string) (domain.Candidate, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Candidate{}, ErrProfileNotFound
		}
		return domain.Candidate{}, err
	}
	if !profile.IsActive {
		return domain.Candidate{}, ErrProfileNotFound
	}
	return domain.NewCandidate(profile, time.Now().UTC()), nil
}
