package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/generator"
	"systemfit/leveling-app/internal/planner"
)

var ErrNoMuscles = errors.New("at least one target muscle is required")

// PlanService obtains workout plans, preferring the remote generation
// backend and transparently substituting the offline synthesizer on any
// failure. Callers always receive a usable plan for a non-empty muscle set.
//
// A single remote failure routes straight to offline synthesis; there are no
// retries within one request.
type PlanService interface {
	RequestWorkoutPlan(ctx context.Context, req generator.PlanRequest) (*domain.WorkoutPlan, error)
	ExerciseAlternatives(ctx context.Context, exerciseName, muscleContext string) ([]domain.Exercise, error)
	SkillAnalysis(ctx context.Context, skillName string) (*generator.SkillAnalysis, error)
}

type planService struct {
	gen generator.Client
}

func NewPlanService(gen generator.Client) PlanService {
	return &planService{gen: gen}
}

// RequestWorkoutPlan is the single entry point for plan generation.
// Frequency, gender, volume and preferred days only shape the remote
// prompt; the offline path ignores them beyond muscles, level and mode.
func (s *planService) RequestWorkoutPlan(ctx context.Context, req generator.PlanRequest) (*domain.WorkoutPlan, error) {
	if len(req.Muscles) == 0 {
		return nil, ErrNoMuscles
	}

	// No credential configured: offline immediately, no network attempt.
	if !s.gen.Enabled() {
		return planner.Synthesize(req.Muscles, req.Level, req.Mode), nil
	}

	raw, err := s.gen.GeneratePlan(ctx, req)
	if err == nil {
		err = validateGeneratedPlan(raw)
	}
	if err != nil {
		// Transport, parse and shape failures are all recovered the same
		// way; the caller only ever learns about it through the plan id.
		log.Printf("WARN: Plan generation failed, switching to offline synthesis: %v", err)
		return planner.Synthesize(req.Muscles, req.Level, req.Mode), nil
	}

	plan := &domain.WorkoutPlan{
		ID:                uuid.NewString(),
		Title:             raw.Title,
		TargetMuscles:     req.Muscles,
		MobilityRoutine:   raw.MobilityRoutine,
		Exercises:         raw.Exercises,
		XPReward:          raw.XPReward,
		EstimatedDuration: raw.EstimatedDuration,
		SuggestedSchedule: req.PreferredDays,
	}
	return plan, nil
}

// validateGeneratedPlan filters malformed entries in place and decides
// whether the remote response is usable at all. Mobility entries may
// legitimately filter down to none; exercises may not.
func validateGeneratedPlan(raw *generator.GeneratedPlan) error {
	if raw == nil {
		return generator.ErrMalformed
	}

	exercises := raw.Exercises[:0]
	for _, ex := range raw.Exercises {
		if ex.Name != "" {
			exercises = append(exercises, ex)
		}
	}
	raw.Exercises = exercises
	if len(raw.Exercises) == 0 {
		return errors.New("no valid exercises in generated plan")
	}

	mobility := raw.MobilityRoutine[:0]
	for _, m := range raw.MobilityRoutine {
		if m.Name != "" {
			mobility = append(mobility, m)
		}
	}
	raw.MobilityRoutine = mobility
	return nil
}

// ExerciseAlternatives returns up to four swap options for one exercise.
// Degraded mode returns an empty list rather than an error.
func (s *planService) ExerciseAlternatives(ctx context.Context, exerciseName, muscleContext string) ([]domain.Exercise, error) {
	if !s.gen.Enabled() {
		return []domain.Exercise{}, nil
	}

	alternatives, err := s.gen.GenerateAlternatives(ctx, exerciseName, muscleContext)
	if err != nil {
		log.Printf("WARN: Alternative generation failed: %v", err)
		return []domain.Exercise{}, nil
	}
	return alternatives, nil
}

// SkillAnalysis fetches the technical breakdown for one calisthenics skill.
// Returns nil without error when the backend is offline or fails.
func (s *planService) SkillAnalysis(ctx context.Context, skillName string) (*generator.SkillAnalysis, error) {
	if !s.gen.Enabled() {
		return nil, nil
	}

	analysis, err := s.gen.GenerateSkillAnalysis(ctx, skillName)
	if err != nil {
		log.Printf("WARN: Skill analysis failed: %v", err)
		return nil, nil
	}
	return analysis, nil
}
