package domain

import (
	"fmt"
	"testing"
)

func TestAddSessionPrependsAndCaps(t *testing.T) {
	p := NewPlayer("Jin", GenderMale)
	for i := 0; i <= MaxWorkoutHistory; i++ {
		p.AddSession(WorkoutSession{ID: fmt.Sprintf("s%d", i)})
	}

	if len(p.WorkoutHistory) != MaxWorkoutHistory {
		t.Fatalf("history length = %d, want %d", len(p.WorkoutHistory), MaxWorkoutHistory)
	}
	if p.WorkoutHistory[0].ID != fmt.Sprintf("s%d", MaxWorkoutHistory) {
		t.Errorf("newest not first: %q", p.WorkoutHistory[0].ID)
	}
	for _, s := range p.WorkoutHistory {
		if s.ID == "s0" {
			t.Error("oldest session survived past the cap")
		}
	}
}

func TestNormalizeFillsLegacySnapshot(t *testing.T) {
	p := &Player{Name: "Velho"}
	p.Normalize()

	if p.Gender != GenderMale || p.TrainingFocus != FocusHypertrophy {
		t.Errorf("defaults not applied: gender=%q focus=%q", p.Gender, p.TrainingFocus)
	}
	if p.Level != 1 || p.RequiredXP != 100 || p.Rank != RankE {
		t.Errorf("progression defaults not applied: %+v", p)
	}
	if p.WorkoutHistory == nil || len(p.UnlockedSkills) != 4 {
		t.Errorf("slices not initialized: history=%v skills=%v", p.WorkoutHistory, p.UnlockedSkills)
	}
}

func TestIsOfflineByIDPrefix(t *testing.T) {
	offline := &WorkoutPlan{ID: OfflinePlanPrefix + "123"}
	remote := &WorkoutPlan{ID: "123"}
	if !offline.IsOffline() {
		t.Error("prefixed plan not reported offline")
	}
	if remote.IsOffline() {
		t.Error("unprefixed plan reported offline")
	}
}
