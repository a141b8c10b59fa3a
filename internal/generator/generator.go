// Package generator defines the contract with the remote generation backend
// and its Gemini implementation. Callers treat a missing credential as a
// normal condition: Enabled reports it and every service built on top falls
// back to a well-defined offline result.
package generator

import (
	"context"
	"errors"

	"systemfit/leveling-app/internal/domain"
)

// ErrMalformed marks a response that arrived but failed to parse into the
// expected shape. The orchestrator treats it exactly like a transport error.
var ErrMalformed = errors.New("generator: malformed response")

// TrainingFrequency is the scheduling strategy passed through to the prompt.
type TrainingFrequency string

const (
	FrequencyThreePerWeek TrainingFrequency = "3x_week"
	FrequencyEveryOther   TrainingFrequency = "every_other_day"
	FrequencySystemAuto   TrainingFrequency = "system_auto"
	FrequencyCustomSplit  TrainingFrequency = "custom_split"
)

// VolumeType is the volume tier passed through to the prompt.
type VolumeType string

const (
	VolumeLow        VolumeType = "low_volume"
	VolumeHigh       VolumeType = "high_volume"
	VolumeSystemAuto VolumeType = "system_auto"
)

// PlanRequest carries everything the backend needs to write a plan.
// Frequency, gender, volume and preferred days shape the prompt only.
type PlanRequest struct {
	Muscles       []domain.MuscleGroup
	Level         int
	Frequency     TrainingFrequency
	Gender        domain.Gender
	Mode          domain.TrainingFocus
	Volume        VolumeType
	PreferredDays []string
}

// GeneratedPlan is the raw, not-yet-validated plan body returned by the
// backend. The orchestrator filters and stamps it before it becomes a
// domain.WorkoutPlan.
type GeneratedPlan struct {
	Title             string                    `json:"title"`
	XPReward          int                       `json:"xpReward"`
	EstimatedDuration string                    `json:"estimatedDuration"`
	MobilityRoutine   []domain.MobilityExercise `json:"mobilityRoutine"`
	Exercises         []domain.Exercise         `json:"exercises"`
}

// SkillAnalysis is the technical breakdown of one calisthenics skill.
type SkillAnalysis struct {
	Description   string   `json:"description"`
	Execution     []string `json:"execution"`
	TechnicalTips string   `json:"technicalTips"`
}

// Source is one grounding reference attached to a knowledge search answer.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SearchResult is a grounded knowledge answer.
type SearchResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// ChatTurn is one prior exchange in a coaching conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// Client is the remote generation backend surface.
type Client interface {
	// Enabled reports whether a credential is configured. When false, every
	// other method returns its zero result without a network attempt.
	Enabled() bool

	GeneratePlan(ctx context.Context, req PlanRequest) (*GeneratedPlan, error)
	GenerateAlternatives(ctx context.Context, exerciseName, muscleContext string) ([]domain.Exercise, error)
	GenerateSkillAnalysis(ctx context.Context, skillName string) (*SkillAnalysis, error)
	GenerateVisualization(ctx context.Context, prompt string) ([]byte, error)
	Chat(ctx context.Context, message string, history []ChatTurn) (string, error)
	SearchKnowledge(ctx context.Context, query string) (*SearchResult, error)
	AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error)
}
