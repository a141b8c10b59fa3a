package domain

import "strings"

// Difficulty grades a single exercise inside a plan.
type Difficulty string

const (
	DifficultyNormal Difficulty = "Normal"
	DifficultyHard   Difficulty = "Hard"
	DifficultyHell   Difficulty = "Hell"
)

// MobilityExercise is one entry of the mandatory warm-up phase.
type MobilityExercise struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"` // e.g. "30s" or "10 reps"
	Description string `json:"description"`
	Benefit     string `json:"benefit"`
}

// Exercise is one entry of the resistance phase.
type Exercise struct {
	Name          string     `json:"name"`
	Sets          int        `json:"sets"`
	Reps          string     `json:"reps"`
	RestTime      string     `json:"restTime"` // e.g. "60s", "90s", "2min"
	Grip          string     `json:"grip,omitempty"`
	Notes         string     `json:"notes"`
	TechnicalTips string     `json:"technicalTips,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
}

// OfflinePlanPrefix marks plans produced by the local synthesizer instead of
// the remote generation backend. Callers detect degraded mode by this prefix.
const OfflinePlanPrefix = "offline-"

// WorkoutPlan is a transient quest proposal. It lives in memory for the
// duration of one quest and is never written to the player store.
type WorkoutPlan struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	TargetMuscles     []MuscleGroup      `json:"targetMuscles"`
	MobilityRoutine   []MobilityExercise `json:"mobilityRoutine"`
	Exercises         []Exercise         `json:"exercises"`
	XPReward          int                `json:"xpReward"`
	EstimatedDuration string             `json:"estimatedDuration"`
	SuggestedSchedule []string           `json:"suggestedSchedule,omitempty"`
}

// IsOffline reports whether the plan was produced in degraded mode.
func (p *WorkoutPlan) IsOffline() bool {
	return strings.HasPrefix(p.ID, OfflinePlanPrefix)
}
