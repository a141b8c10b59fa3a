package progression

import (
	"errors"
	"math"

	"systemfit/leveling-app/internal/domain"
)

// XPCurveMultiplier compounds the next-level threshold on every level-up.
const XPCurveMultiplier = 1.5

// EliteUnlockLevel is the level at which elite training techniques open up.
const EliteUnlockLevel = 30

// ErrInvalidThreshold is returned when a player carries a non-positive
// RequiredXP. With a positive seed and fixed multiplier this cannot happen;
// seeing it means the stored snapshot is corrupt.
var ErrInvalidThreshold = errors.New("progression: required xp must be positive")

// EventKind classifies the user-visible outcome of a progression pass.
// The caller renders and expires the corresponding notification; the engine
// has no timing concern.
type EventKind int

const (
	EventNone EventKind = iota
	EventLevelUp
	EventClassChanged
	EventEliteUnlocked
)

// Event is what the engine reports back after applying accumulated XP.
type Event struct {
	Kind         EventKind
	LevelsGained int
	NewClass     string // set when Kind == EventClassChanged
}

type levelTier struct {
	level int
	name  string
}

// Classes maps level tiers to class names, ascending.
var Classes = []levelTier{
	{1, "Iniciado"},
	{10, "Praticante"},
	{20, "Atleta de Elite"},
	{30, "Mestre Calistênico"},
	{50, "Lenda Viva"},
	{75, "Titã Físico"},
	{100, "Divindade do Movimento"},
}

// Titles maps level tiers to honorific titles, ascending.
var Titles = []levelTier{
	{5, "O Persistente"},
	{15, "Quebrador de Limites"},
	{25, "Aquele que Supera"},
	{30, "Despertado"},
	{40, "Mestre da Gravidade"},
	{60, "Governante do Próprio Corpo"},
	{80, "Um Exército de Um Homem"},
}

var rankThresholds = []struct {
	level int
	rank  domain.Rank
}{
	{1, domain.RankE},
	{10, domain.RankD},
	{25, domain.RankC},
	{45, domain.RankB},
	{70, domain.RankA},
	{100, domain.RankS},
}

// RankForLevel returns the highest rank whose threshold is at or below level.
func RankForLevel(level int) domain.Rank {
	rank := domain.RankE
	for _, t := range rankThresholds {
		if level >= t.level {
			rank = t.rank
		}
	}
	return rank
}

// ClassForLevel returns the highest class tier reached at the given level.
func ClassForLevel(level int) string {
	return highestTier(Classes, level, "Iniciado")
}

// TitleForLevel returns the highest title tier reached at the given level,
// or "Nenhum" below the first tier.
func TitleForLevel(level int) string {
	return highestTier(Titles, level, "Nenhum")
}

func highestTier(tiers []levelTier, level int, fallback string) string {
	name := fallback
	for _, t := range tiers {
		if level >= t.level {
			name = t.name
		}
	}
	return name
}

// Apply consumes accumulated XP on the player, cascading through as many
// level-ups as the XP covers, and re-derives rank, class and title. After a
// successful call xp < requiredXp always holds. The returned event tells the
// caller which notification, if any, to show.
//
// A single large award may span several levels; the loop carries the
// overflow instead of leaving it dangling.
func Apply(p *domain.Player) (Event, error) {
	if p.RequiredXP <= 0 {
		return Event{}, ErrInvalidThreshold
	}

	levels := 0
	for p.XP >= p.RequiredXP {
		p.XP -= p.RequiredXP
		p.Level++
		p.RequiredXP = int(math.Round(float64(p.RequiredXP) * XPCurveMultiplier))

		p.Stats.Strength += 2
		p.Stats.Agility += 2
		p.Stats.Vitality += 2
		p.Stats.Intellect++
		p.Stats.Perception++

		levels++
	}

	if levels == 0 {
		return Event{Kind: EventNone}, nil
	}

	p.Rank = RankForLevel(p.Level)
	p.Title = TitleForLevel(p.Level)

	// One event per apply; when a cascade crosses several tiers the most
	// significant change wins: elite unlock > class change > level up.
	event := Event{Kind: EventLevelUp, LevelsGained: levels}
	if class := ClassForLevel(p.Level); class != p.Job {
		p.Job = class
		event.Kind = EventClassChanged
		event.NewClass = class
	}
	if p.Level-levels < EliteUnlockLevel && p.Level >= EliteUnlockLevel {
		event.Kind = EventEliteUnlocked
	}

	return event, nil
}
