package progression

import (
	"testing"

	"systemfit/leveling-app/internal/domain"
)

func TestApplySingleLevelUp(t *testing.T) {
	p := domain.NewPlayer("Hunter_01", domain.GenderMale)
	p.XP = 105 // level 1, threshold 100, simulating a 10 xp award on top of 95

	event, err := Apply(p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.XP != 5 {
		t.Errorf("xp = %d, want 5", p.XP)
	}
	if p.RequiredXP != 150 {
		t.Errorf("requiredXp = %d, want 150", p.RequiredXP)
	}
	if p.Rank != domain.RankE {
		t.Errorf("rank = %s, want E", p.Rank)
	}
	if p.Job != "Iniciado" {
		t.Errorf("job = %q, want Iniciado", p.Job)
	}
	if p.Stats.Strength != 12 {
		t.Errorf("str = %d, want 12", p.Stats.Strength)
	}
	if p.Stats.Intellect != 11 {
		t.Errorf("int = %d, want 11", p.Stats.Intellect)
	}
	if event.Kind != EventLevelUp || event.LevelsGained != 1 {
		t.Errorf("event = %+v, want single level-up", event)
	}
}

func TestApplyCascadesThroughMultipleLevels(t *testing.T) {
	p := domain.NewPlayer("Hunter_01", domain.GenderMale)
	// 100 + 150 + 225 = 475 clears three levels with 25 left over.
	p.XP = 500

	event, err := Apply(p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if p.Level != 4 {
		t.Errorf("level = %d, want 4", p.Level)
	}
	if p.XP != 25 {
		t.Errorf("xp = %d, want 25", p.XP)
	}
	// round(225 * 1.5) = 338
	if p.RequiredXP != 338 {
		t.Errorf("requiredXp = %d, want 338", p.RequiredXP)
	}
	if p.XP >= p.RequiredXP {
		t.Errorf("xp %d not below threshold %d after apply", p.XP, p.RequiredXP)
	}
	if event.LevelsGained != 3 {
		t.Errorf("levels gained = %d, want 3", event.LevelsGained)
	}
	if p.Stats.Strength != 16 || p.Stats.Perception != 13 {
		t.Errorf("stats = %+v, want +2/+1 per level over base 10", p.Stats)
	}
}

func TestApplyNoLevelUpLeavesPlayerUntouched(t *testing.T) {
	p := domain.NewPlayer("Hunter_01", domain.GenderFemale)
	p.XP = 99

	event, err := Apply(p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if event.Kind != EventNone {
		t.Errorf("event kind = %v, want EventNone", event.Kind)
	}
	if p.Level != 1 || p.XP != 99 || p.RequiredXP != 100 {
		t.Errorf("player mutated without a level-up: level=%d xp=%d req=%d", p.Level, p.XP, p.RequiredXP)
	}
}

func TestApplyRejectsInvalidThreshold(t *testing.T) {
	p := domain.NewPlayer("Hunter_01", domain.GenderMale)
	p.RequiredXP = 0

	if _, err := Apply(p); err != ErrInvalidThreshold {
		t.Fatalf("err = %v, want ErrInvalidThreshold", err)
	}
}

func TestClassChangeEvent(t *testing.T) {
	p := domain.NewPlayer("Hunter_01", domain.GenderMale)
	p.Level = 9
	p.RequiredXP = 100
	p.XP = 100

	event, err := Apply(p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Level != 10 {
		t.Fatalf("level = %d, want 10", p.Level)
	}
	if event.Kind != EventClassChanged || event.NewClass != "Praticante" {
		t.Errorf("event = %+v, want class change to Praticante", event)
	}
	if p.Job != "Praticante" {
		t.Errorf("job = %q, want Praticante", p.Job)
	}
	if p.Rank != domain.RankD {
		t.Errorf("rank = %s, want D", p.Rank)
	}
}

func TestEliteUnlockAtLevel30(t *testing.T) {
	p := domain.NewPlayer("Hunter_01", domain.GenderMale)
	p.Level = 29
	p.RequiredXP = 100
	p.XP = 150

	event, err := Apply(p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Level != 30 {
		t.Fatalf("level = %d, want 30", p.Level)
	}
	if event.Kind != EventEliteUnlocked {
		t.Errorf("event kind = %v, want EventEliteUnlocked", event.Kind)
	}
	if p.Job != "Mestre Calistênico" {
		t.Errorf("job = %q, want Mestre Calistênico", p.Job)
	}
	if p.Title != "Despertado" {
		t.Errorf("title = %q, want Despertado", p.Title)
	}
}

func TestDerivedTiersAreMonotonic(t *testing.T) {
	prevRank := -1
	prevClass := -1
	prevTitle := -1

	rankIndex := map[domain.Rank]int{
		domain.RankE: 0, domain.RankD: 1, domain.RankC: 2,
		domain.RankB: 3, domain.RankA: 4, domain.RankS: 5,
	}
	classIndex := func(name string) int {
		for i, c := range Classes {
			if c.name == name {
				return i
			}
		}
		return -1
	}
	titleIndex := func(name string) int {
		for i, c := range Titles {
			if c.name == name {
				return i
			}
		}
		return -1
	}

	for level := 1; level <= 120; level++ {
		r := rankIndex[RankForLevel(level)]
		c := classIndex(ClassForLevel(level))
		ti := titleIndex(TitleForLevel(level))

		if r < prevRank {
			t.Fatalf("rank regressed at level %d", level)
		}
		if c < prevClass {
			t.Fatalf("class regressed at level %d", level)
		}
		if ti < prevTitle {
			t.Fatalf("title regressed at level %d", level)
		}
		prevRank, prevClass, prevTitle = r, c, ti
	}

	if RankForLevel(100) != domain.RankS {
		t.Errorf("rank at 100 = %s, want S", RankForLevel(100))
	}
	if ClassForLevel(100) != "Divindade do Movimento" {
		t.Errorf("class at 100 = %q", ClassForLevel(100))
	}
}
