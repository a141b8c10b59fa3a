package planner

import (
	"strings"
	"testing"

	"systemfit/leveling-app/internal/domain"
)

func TestSynthesizeStrengthPlanShape(t *testing.T) {
	muscles := []domain.MuscleGroup{domain.MuscleChest, domain.MuscleLegs}
	plan := Synthesize(muscles, 12, domain.FocusStrength)

	if !plan.IsOffline() {
		t.Errorf("plan id %q does not carry the offline prefix", plan.ID)
	}
	if len(plan.Exercises) != 2 {
		t.Fatalf("exercises = %d, want 2", len(plan.Exercises))
	}
	if len(plan.MobilityRoutine) != 2 {
		t.Fatalf("mobility entries = %d, want 2", len(plan.MobilityRoutine))
	}
	if plan.XPReward != 270 {
		t.Errorf("xpReward = %d, want 270", plan.XPReward)
	}
	if plan.EstimatedDuration != "45-60 min" {
		t.Errorf("estimatedDuration = %q", plan.EstimatedDuration)
	}

	for _, ex := range plan.Exercises {
		if ex.Sets != 5 || ex.Reps != "3-5" || ex.RestTime != "3min" {
			t.Errorf("strength exercise %q = %dx%s/%s, want 5x3-5/3min", ex.Name, ex.Sets, ex.Reps, ex.RestTime)
		}
		if !strings.HasSuffix(ex.Name, "[OFFLINE]") {
			t.Errorf("exercise %q missing offline marker", ex.Name)
		}
		if ex.TechnicalTips == "" {
			t.Errorf("exercise %q missing technical tips", ex.Name)
		}
	}
	if !strings.HasPrefix(plan.Exercises[0].Name, "Supino Reto (Barra)") {
		t.Errorf("first chest exercise = %q, want primary variant", plan.Exercises[0].Name)
	}
}

func TestSynthesizeHypertrophyDefaults(t *testing.T) {
	plan := Synthesize([]domain.MuscleGroup{domain.MuscleBack}, 1, domain.FocusHypertrophy)

	ex := plan.Exercises[0]
	if ex.Sets != 4 || ex.Reps != "8-12" || ex.RestTime != "90s" {
		t.Errorf("hypertrophy exercise = %dx%s/%s, want 4x8-12/90s", ex.Sets, ex.Reps, ex.RestTime)
	}
	if !strings.HasPrefix(ex.Name, "Levantamento Terra") {
		t.Errorf("back exercise = %q, want primary variant", ex.Name)
	}
	if plan.XPReward != 160 {
		t.Errorf("xpReward = %d, want 160", plan.XPReward)
	}
}

func TestSynthesizeCoreAlwaysToFailure(t *testing.T) {
	for _, mode := range []domain.TrainingFocus{domain.FocusHypertrophy, domain.FocusStrength} {
		plan := Synthesize([]domain.MuscleGroup{domain.MuscleCore}, 5, mode)
		if got := plan.Exercises[0].Reps; got != "Falha" {
			t.Errorf("mode %s: core reps = %q, want Falha", mode, got)
		}
	}
}

func TestSynthesizeSecondaryVariantByOrdinal(t *testing.T) {
	// Chest appears second, so the secondary variant is selected.
	plan := Synthesize([]domain.MuscleGroup{domain.MuscleLegs, domain.MuscleChest}, 1, domain.FocusHypertrophy)
	if !strings.HasPrefix(plan.Exercises[1].Name, "Crucifixo Inclinado") {
		t.Errorf("repeat-position chest exercise = %q, want secondary variant", plan.Exercises[1].Name)
	}
}

func TestSynthesizeUnknownMuscleFallsBack(t *testing.T) {
	plan := Synthesize([]domain.MuscleGroup{domain.MuscleGroup("neck")}, 1, domain.FocusHypertrophy)
	if !strings.HasPrefix(plan.Exercises[0].Name, "Exercício Padrão") {
		t.Errorf("unknown muscle exercise = %q, want default name", plan.Exercises[0].Name)
	}
}

func TestSynthesizeTitleNamesAllMuscles(t *testing.T) {
	plan := Synthesize([]domain.MuscleGroup{domain.MuscleChest, domain.MuscleLegs}, 1, domain.FocusStrength)
	if plan.Title != "TREINO DE EMERGÊNCIA: CHEST + LEGS" {
		t.Errorf("title = %q", plan.Title)
	}
}
