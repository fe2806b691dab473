package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/alimalikali/pup-vision-sub000/internal/domain"
	"github.com/alimalikali/pup-vision-sub000/internal/repository"
	"github.com/alimalikali/pup-vision-sub000/internal/service"
)

type mockInteractionRepo struct {
	profiles *mockProfileRepo
	matches  []domain.Match
}

func (m *mockInteractionRepo) Admire(_ context.Context, requesterID, targetID string, score int) (domain.Match, bool, error) {
	requester, ok := m.profiles.profiles[requesterID]
	if !ok {
		return domain.Match{}, false, pgx.ErrNoRows
	}
	target, ok := m.profiles.profiles[targetID]
	if !ok || !target.IsActive {
		return domain.Match{}, false, pgx.ErrNoRows
	}
	for _, id := range requester.AdmiredUsers {
		if id == targetID {
			return domain.Match{}, false, repository.ErrDuplicateAdmire
		}
	}

	mutual := false
	for _, id := range target.AdmiredUsers {
		if id == requesterID {
			mutual = true
		}
	}
	requester.AdmiredUsers = append(requester.AdmiredUsers, targetID)
	target.AdmiredBy = append(target.AdmiredBy, requesterID)
	m.profiles.profiles[requesterID] = requester
	m.profiles.profiles[targetID] = target

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
		m.matches = append(m.matches, match)
	}
	return match, mutual, nil
}

func (m *mockInteractionRepo) Pass(_ context.Context, requesterID, targetID string) error {
	requester, ok := m.profiles.profiles[requesterID]
	if !ok {
		return pgx.ErrNoRows
	}
	kept := requester.AdmiredUsers[:0]
	for _, id := range requester.AdmiredUsers {
		if id != targetID {
			kept = append(kept, id)
		}
	}
	requester.AdmiredUsers = kept
	m.profiles.profiles[requesterID] = requester
	return nil
}

func (m *mockInteractionRepo) ListByUser(_ context.Context, userID string) ([]domain.Match, error) {
	var out []domain.Match
	for _, match := range m.matches {
		if match.UserAID == userID || match.UserBID == userID {
			out = append(out, match)
		}
	}
	return out, nil
}

func setupInteractionRouter(repo *mockProfileRepo, jwtSvc *service.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	interactions := &mockInteractionRepo{profiles: repo}
	svc := service.NewInteractionService(zap.NewNop(), repo, interactions, interactions, nil)
	h := NewInteractionHandler(zap.NewNop(), svc)
	r := gin.New()
	r.POST("/interactions", JWTAuthMiddleware(jwtSvc), h.Interact)
	r.GET("/matches", JWTAuthMiddleware(jwtSvc), h.Matches)
	return r
}

func TestInteractionHandlerAdmire(t *testing.T) {
	repo := newMockProfileRepo()
	now := time.Now().UTC()
	seedProfile(repo, "a", now)
	seedProfile(repo, "b", now)
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.GenerateAccessToken("a")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	r := setupInteractionRouter(repo, jwtSvc)

	rec := authedRequest(r, http.MethodPost, "/interactions", token, map[string]string{
		"targetUserId": "b",
		"action":       "admire",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		IsMutual bool   `json:"isMutual"`
	}
	decodeJSON(t, rec.Body.Bytes(), &resp)
	if !resp.Success || resp.IsMutual {
		t.Fatalf("expected non-mutual success, got %+v", resp)
	}
}

func TestInteractionHandlerMutualAdmire(t *testing.T) {
	repo := newMockProfileRepo()
	now := time.Now().UTC()
	a := seedProfile(repo, "a", now)
	a.AdmiredUsers = []string{}
	repo.profiles["a"] = a
	b := seedProfile(repo, "b", now)
	b.AdmiredUsers = []string{"a"}
	repo.profiles["b"] = b

	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.GenerateAccessToken("a")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	r := setupInteractionRouter(repo, jwtSvc)

	rec := authedRequest(r, http.MethodPost, "/interactions", token, map[string]string{
		"targetUserId": "b",
		"action":       "admire",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success  bool          `json:"success"`
		IsMutual bool          `json:"isMutual"`
		Data     *domain.Match `json:"data"`
	}
	decodeJSON(t, rec.Body.Bytes(), &resp)
	if !resp.IsMutual || resp.Data == nil || resp.Data.Status != domain.MatchStatusMatched {
		t.Fatalf("expected mutual admire with match, got %+v", resp)
	}
}

func TestInteractionHandlerSelfAdmire(t *testing.T) {
	repo := newMockProfileRepo()
	seedProfile(repo, "a", time.Now().UTC())
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.GenerateAccessToken("a")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	r := setupInteractionRouter(repo, jwtSvc)

	rec := authedRequest(r, http.MethodPost, "/interactions", token, map[string]string{
		"targetUserId": "a",
		"action":       "admire",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInteractionHandlerDuplicateAdmireConflict(t *testing.T) {
	repo := newMockProfileRepo()
	now := time.Now().UTC()
	a := seedProfile(repo, "a", now)
	a.AdmiredUsers = []string{"b"}
	repo.profiles["a"] = a
	seedProfile(repo, "b", now)
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.GenerateAccessToken("a")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	r := setupInteractionRouter(repo, jwtSvc)

	rec := authedRequest(r, http.MethodPost, "/interactions", token, map[string]string{
		"targetUserId": "b",
		"action":       "admire",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestInteractionHandlerInvalidAction(t *testing.T) {
	repo := newMockProfileRepo()
	seedProfile(repo, "a", time.Now().UTC())
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.GenerateAccessToken("a")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	r := setupInteractionRouter(repo, jwtSvc)

	rec := authedRequest(r, http.MethodPost, "/interactions", token, map[string]string{
		"targetUserId": "b",
		"action":       "wave",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInteractionHandlerPass(t *testing.T) {
	repo := newMockProfileRepo()
	now := time.Now().UTC()
	seedProfile(repo, "a", now)
	seedProfile(repo, "b", now)
	jwtSvc := service.NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.GenerateAccessToken("a")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	r := setupInteractionRouter(repo, jwtSvc)

	rec := authedRequest(r, http.MethodPost, "/interactions", token, map[string]string{
		"targetUserId": "b",
		"action":       "pass",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
