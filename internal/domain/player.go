package domain

import (
	"time"
)

// Rank is the coarse power tier derived from level. Display only.
type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// Gender affects presentation and the tone of generated plans only.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// TrainingFocus selects the set/rep/rest defaults for generated plans.
type TrainingFocus string

const (
	FocusHypertrophy TrainingFocus = "hypertrophy"
	FocusStrength    TrainingFocus = "strength"
)

// MuscleGroup identifies a selectable target region on the body map.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
)

// PlayerStats is the five-attribute block grown on every level-up.
type PlayerStats struct {
	Strength   int `bson:"str" json:"str"`
	Agility    int `bson:"agi" json:"agi"`
	Vitality   int `bson:"vit" json:"vit"`
	Intellect  int `bson:"int" json:"int"`
	Perception int `bson:"per" json:"per"`
}

// WorkoutSession is an immutable history entry created once when a quest
// is completed. Evicted only by the history cap.
type WorkoutSession struct {
	ID      string        `bson:"id" json:"id"`
	Date    time.Time     `bson:"date" json:"date"`
	Title   string        `bson:"title" json:"title"`
	Muscles []MuscleGroup `bson:"muscles" json:"muscles"`
	Type    TrainingFocus `bson:"type" json:"type"`
}

// MaxWorkoutHistory caps the player's session history; the oldest entry
// is dropped when a new one pushes past the cap.
const MaxWorkoutHistory = 50

// Player is the per-account progression aggregate. Job, Title and Rank are
// derived from Level by the progression engine and never set independently.
type Player struct {
	Name           string          `bson:"name" json:"name"`
	Job            string          `bson:"job" json:"job"`
	Title          string          `bson:"title" json:"title"`
	Level          int             `bson:"level" json:"level"`
	Rank           Rank            `bson:"rank" json:"rank"`
	XP             int             `bson:"xp" json:"xp"`
	RequiredXP     int             `bson:"requiredXp" json:"requiredXp"`
	HP             int             `bson:"hp" json:"hp"`
	MaxHP          int             `bson:"maxHp" json:"maxHp"`
	MP             int             `bson:"mp" json:"mp"`
	MaxMP          int             `bson:"maxMp" json:"maxMp"`
	Stats          PlayerStats     `bson:"stats" json:"stats"`
	UnlockedSkills []string        `bson:"unlockedSkills" json:"unlockedSkills"`
	Gender         Gender          `bson:"gender" json:"gender"`
	WorkoutHistory []WorkoutSession `bson:"workoutHistory" json:"workoutHistory"`
	TrainingFocus  TrainingFocus   `bson:"trainingFocus" json:"trainingFocus"`
	// StrengthCycleStart marks the beginning of the 3-week strength cycle.
	// Present only while TrainingFocus is strength.
	StrengthCycleStart *time.Time `bson:"strengthCycleStart,omitempty" json:"strengthCycleStart,omitempty"`
}

// NewPlayer returns the starting state for a fresh account: level 1, rank E,
// base stats at 10 and the tier-1 skill of every category unlocked.
func NewPlayer(name string, gender Gender) *Player {
	if gender == "" {
		gender = GenderMale
	}
	return &Player{
		Name:       name,
		Job:        "Iniciado",
		Title:      "Nenhum",
		Level:      1,
		Rank:       RankE,
		XP:         0,
		RequiredXP: 100,
		HP:         100,
		MaxHP:      100,
		MP:         50,
		MaxMP:      50,
		Stats: PlayerStats{
			Strength:   10,
			Agility:    10,
			Vitality:   10,
			Intellect:  10,
			Perception: 10,
		},
		UnlockedSkills: []string{"push_1", "pull_1", "legs_1", "core_1"},
		Gender:         gender,
		WorkoutHistory: []WorkoutSession{},
		TrainingFocus:  FocusHypertrophy,
	}
}

// AddSession prepends a session to the history (most-recent-first) and
// enforces the cap.
func (p *Player) AddSession(s WorkoutSession) {
	history := make([]WorkoutSession, 0, len(p.WorkoutHistory)+1)
	history = append(history, s)
	history = append(history, p.WorkoutHistory...)
	if len(history) > MaxWorkoutHistory {
		history = history[:MaxWorkoutHistory]
	}
	p.WorkoutHistory = history
}

// HasSkill reports whether the given skill id is already unlocked.
func (p *Player) HasSkill(id string) bool {
	for _, s := range p.UnlockedSkills {
		if s == id {
			return true
		}
	}
	return false
}

// Normalize fills in zero-valued fields on players loaded from older
// snapshots so the rest of the code can rely on them being set.
func (p *Player) Normalize() {
	if p.Gender == "" {
		p.Gender = GenderMale
	}
	if p.TrainingFocus == "" {
		p.TrainingFocus = FocusHypertrophy
	}
	if p.WorkoutHistory == nil {
		p.WorkoutHistory = []WorkoutSession{}
	}
	if p.UnlockedSkills == nil {
		p.UnlockedSkills = []string{"push_1", "pull_1", "legs_1", "core_1"}
	}
	if p.RequiredXP <= 0 {
		p.RequiredXP = 100
	}
	if p.Level <= 0 {
		p.Level = 1
	}
	if p.Rank == "" {
		p.Rank = RankE
	}
}
