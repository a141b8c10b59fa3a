package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/generator"
	"systemfit/leveling-app/internal/progression"
	"systemfit/leveling-app/internal/service"
)

type stubPlayerService struct {
	questResult *service.QuestResult
}

func (s *stubPlayerService) Get(ctx context.Context, username string) (*domain.Player, error) {
	return domain.NewPlayer(username, domain.GenderMale), nil
}

func (s *stubPlayerService) CompleteQuest(ctx context.Context, username string, plan *domain.WorkoutPlan) (*service.QuestResult, error) {
	return s.questResult, nil
}

func (s *stubPlayerService) MasterSkill(ctx context.Context, username, skillID string) (*domain.Player, progression.Event, error) {
	return nil, progression.Event{}, nil
}

func (s *stubPlayerService) SetTrainingFocus(ctx context.Context, username string, focus domain.TrainingFocus) (*domain.Player, error) {
	return nil, nil
}

func (s *stubPlayerService) SetGender(ctx context.Context, username string, gender domain.Gender) (*domain.Player, error) {
	return nil, nil
}

type stubPlanService struct{}

func (s *stubPlanService) RequestWorkoutPlan(ctx context.Context, req generator.PlanRequest) (*domain.WorkoutPlan, error) {
	return nil, nil
}

func (s *stubPlanService) ExerciseAlternatives(ctx context.Context, exerciseName, muscleContext string) ([]domain.Exercise, error) {
	return nil, nil
}

func (s *stubPlanService) SkillAnalysis(ctx context.Context, skillName string) (*generator.SkillAnalysis, error) {
	return nil, nil
}

func performComplete(t *testing.T, players service.PlayerService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/plans/complete", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ContextUsernameKey, "jin")

	NewPlanHandler(&stubPlanService{}, players).Complete(c)
	return w
}

func TestCompleteRejectsExcessiveReward(t *testing.T) {
	body := `{"plan":{"title":"Treino","xpReward":999999}}`
	w := performComplete(t, &stubPlayerService{}, body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCompleteRejectsNegativeRewardAndMissingTitle(t *testing.T) {
	for _, body := range []string{
		`{"plan":{"title":"Treino","xpReward":-10}}`,
		`{"plan":{"xpReward":100}}`,
	} {
		w := performComplete(t, &stubPlayerService{}, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}
}

func TestCompleteAcceptsPlausiblePlan(t *testing.T) {
	players := &stubPlayerService{
		questResult: &service.QuestResult{
			Player:  domain.NewPlayer("jin", domain.GenderMale),
			Event:   progression.Event{Kind: progression.EventLevelUp, LevelsGained: 1},
			Session: domain.WorkoutSession{ID: "s1", Title: "Treino"},
		},
	}

	body := `{"plan":{"title":"Treino","xpReward":270}}`
	w := performComplete(t, players, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"LEVEL UP!"`) {
		t.Errorf("notification missing from response: %s", w.Body.String())
	}
}
