// Package planner synthesizes workout plans locally, without any remote
// generation backend. It is the fallback path for every plan request and the
// only path when no API credential is configured.
package planner

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"systemfit/leveling-app/internal/domain"
)

// Per-muscle exercise names. The first occurrence of a muscle in the request
// picks the primary variant, any later occurrence the secondary one. Muscles
// outside the table fall back to a generic entry.
var offlineExercises = map[domain.MuscleGroup][2]string{
	domain.MuscleChest:     {"Supino Reto (Barra)", "Crucifixo Inclinado"},
	domain.MuscleBack:      {"Levantamento Terra", "Puxada Frontal"},
	domain.MuscleLegs:      {"Agachamento Livre", "Leg Press 45"},
	domain.MuscleShoulders: {"Desenvolvimento Militar", "Desenvolvimento Militar"},
	domain.MuscleArms:      {"Rosca Direta + Tríceps Testa", "Rosca Direta + Tríceps Testa"},
	domain.MuscleCore:      {"Prancha Abdominal", "Prancha Abdominal"},
}

const (
	defaultExerciseName  = "Exercício Padrão"
	offlineTechnicalTips = "Conexão mente-músculo. Controle a fase excêntrica."
	offlineNotes         = "Protocolo de emergência ativado."
	offlineDuration      = "45-60 min"
)

// Synthesize deterministically builds a complete plan for the requested
// muscles. Callers must pass at least one muscle; the result always carries
// exactly two mobility entries and one resistance exercise per muscle, each
// marked as produced offline.
func Synthesize(muscles []domain.MuscleGroup, level int, mode domain.TrainingFocus) *domain.WorkoutPlan {
	isStrength := mode == domain.FocusStrength

	exercises := make([]domain.Exercise, 0, len(muscles))
	for i, muscle := range muscles {
		name := defaultExerciseName
		if variants, ok := offlineExercises[muscle]; ok {
			if i == 0 {
				name = variants[0]
			} else {
				name = variants[1]
			}
		}

		sets, reps, rest := 4, "8-12", "90s"
		if isStrength {
			sets, reps, rest = 5, "3-5", "3min"
		}
		// Core is always trained to failure, whatever the mode.
		if muscle == domain.MuscleCore {
			reps = "Falha"
		}

		exercises = append(exercises, domain.Exercise{
			Name:          name + " [OFFLINE]",
			Sets:          sets,
			Reps:          reps,
			RestTime:      rest,
			Difficulty:    domain.DifficultyNormal,
			TechnicalTips: offlineTechnicalTips,
			Notes:         offlineNotes,
			Grip:          "Normal",
		})
	}

	names := make([]string, len(muscles))
	for i, m := range muscles {
		names[i] = string(m)
	}

	return &domain.WorkoutPlan{
		ID:                domain.OfflinePlanPrefix + uuid.NewString(),
		Title:             fmt.Sprintf("TREINO DE EMERGÊNCIA: %s", strings.ToUpper(strings.Join(names, " + "))),
		TargetMuscles:     muscles,
		XPReward:          150 + level*10,
		EstimatedDuration: offlineDuration,
		MobilityRoutine: []domain.MobilityExercise{
			{
				Name:        "Rotação Articular",
				Duration:    "1 min",
				Description: "Gire as articulações alvo suavemente para lubrificação.",
				Benefit:     "Preparação articular.",
			},
			{
				Name:        "Alongamento Dinâmico",
				Duration:    "2 min",
				Description: "Movimentos balísticos controlados.",
				Benefit:     "Ativação muscular.",
			},
		},
		Exercises: exercises,
	}
}
