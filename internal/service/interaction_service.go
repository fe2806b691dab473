package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/alimalikali/pup-vision-sub000/internal/domain"
	"github.com/alimalikali/pup-vision-sub000/internal/repository"
)

var (
	ErrSelfAdmire     = errors.New("cannot admire yourself")
	ErrAlreadyAdmired = errors.New("already admired")
	ErrRateLimited    = errors.New("rate limited")
)

// AdmireResult reporta el resultado de un admire. Match solo viene cuando
// la admiracion resulto mutua.
type AdmireResult struct {
	IsMutual bool
	Match    *domain.Match
}

// InteractionService coordina el flujo admire/pass y la creacion de matches.
type InteractionService struct {
	logger       *zap.Logger
	profiles     repository.ProfileRepository
	interactions repository.InteractionRepository
	matches      repository.MatchRepository
	limiter      ActionRateLimiter
}

func NewInteractionService(
	logger *zap.Logger,
	profiles repository.ProfileRepository,
	interactions repository.InteractionRepository,
	matches repository.MatchRepository,
	limiter ActionRateLimiter,
) *InteractionService {
	return &InteractionService{
		logger:       logger,
		profiles:     profiles,
		interactions: interactions,
		matches:      matches,
		limiter:      limiter,
	}
}

// Admire registra la admiracion del solicitante hacia el target. El score de
// compatibilidad se calcula aca, en el momento del admire, y queda congelado
// en el match si la admiracion resulta mutua.
func (s *InteractionService) Admire(ctx context.Context, requesterID, targetID string) (AdmireResult, error) {
	if requesterID == targetID {
		return AdmireResult{}, ErrSelfAdmire
	}
	if s.limiter != nil && !s.limiter.Allow(requesterID) {
		return AdmireResult{}, ErrRateLimited
	}

	requester, err := s.getActiveProfile(ctx, requesterID)
	if err != nil {
		return AdmireResult{}, err
	}
	target, err := s.getActiveProfile(ctx, targetID)
	if err != nil {
		return AdmireResult{}, err
	}

	score := domain.CompatibilityScore(requester, target)
	match, mutual, err := s.interactions.Admire(ctx, requesterID, targetID, score)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateAdmire):
			return AdmireResult{}, ErrAlreadyAdmired
		case errors.Is(err, pgx.ErrNoRows):
			return AdmireResult{}, ErrProfileNotFound
		}
		return AdmireResult{}, err
	}

	result := AdmireResult{IsMutual: mutual}
	if mutual {
		result.Match = &match
		s.logger.Info("mutual admire",
			zap.String("user_a", requesterID),
			zap.String("user_b", targetID),
			zap.Int("compatibility_score", match.CompatibilityScore),
		)
	}
	return result, nil
}

// Pass retira la admiracion hacia el target. Pasar a alguien nunca admirado
// no es un error.
func (s *InteractionService) Pass(ctx context.Context, requesterID, targetID string) error {
	if _, err := s.getActiveProfile(ctx, requesterID); err != nil {
		return err
	}
	if err := s.interactions.Pass(ctx, requesterID, targetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}

// Matches lista los matches del usuario, mas reciente primero.
func (s *InteractionService) Matches(ctx context.Context, userID string) ([]domain.Match, error) {
	if _, err := s.getActiveProfile(ctx, userID); err != nil {
		return nil, err
	}
	return s.matches.ListByUser(ctx, userID)
}

func (s *InteractionService) getActiveProfile(ctx context.Context, userID string) (domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	if !profile.IsActive {
		return domain.Profile{}, ErrProfileNotFound
	}
	return profile, nil
}
