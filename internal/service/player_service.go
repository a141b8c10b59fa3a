package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/progression"
	"systemfit/leveling-app/internal/repository"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrUnknownSkill   = errors.New("unknown skill")
	ErrSkillLocked    = errors.New("skill is not unlocked")
)

// XP awarded for demonstrating mastery of a calisthenics skill.
const skillMasteryXP = 50

// QuestResult is what the caller gets back after completing a quest: the new
// player state plus the progression event to render as a notification.
type QuestResult struct {
	Player  *domain.Player
	Event   progression.Event
	Session domain.WorkoutSession
}

// PlayerService owns all mutations of the player aggregate. Every mutation
// runs the progression engine and writes the whole snapshot back.
type PlayerService interface {
	Get(ctx context.Context, username string) (*domain.Player, error)
	CompleteQuest(ctx context.Context, username string, plan *domain.WorkoutPlan) (*QuestResult, error)
	MasterSkill(ctx context.Context, username, skillID string) (*domain.Player, progression.Event, error)
	SetTrainingFocus(ctx context.Context, username string, focus domain.TrainingFocus) (*domain.Player, error)
	SetGender(ctx context.Context, username string, gender domain.Gender) (*domain.Player, error)
}

type playerService struct {
	accounts repository.AccountStore
}

func NewPlayerService(accounts repository.AccountStore) PlayerService {
	return &playerService{accounts: accounts}
}

func (s *playerService) Get(ctx context.Context, username string) (*domain.Player, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &account.Player, nil
}

// CompleteQuest records the finished workout, awards its XP and a small MP
// recovery, and applies any resulting level-ups. The plan itself is
// transient and is never persisted; only the session record survives.
func (s *playerService) CompleteQuest(ctx context.Context, username string, plan *domain.WorkoutPlan) (*QuestResult, error) {
	player, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	session := domain.WorkoutSession{
		ID:      uuid.NewString(),
		Date:    time.Now().UTC(),
		Title:   plan.Title,
		Muscles: plan.TargetMuscles,
		Type:    player.TrainingFocus,
	}
	player.AddSession(session)

	player.XP += plan.XPReward
	player.MP += 10
	if player.MP > player.MaxMP {
		player.MP = player.MaxMP
	}

	event, err := progression.Apply(player)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.SavePlayer(ctx, username, player); err != nil {
		return nil, err
	}

	return &QuestResult{Player: player, Event: event, Session: session}, nil
}

// MasterSkill awards the mastery XP and unlocks the next tier of the same
// category, if one exists and is still locked.
func (s *playerService) MasterSkill(ctx context.Context, username, skillID string) (*domain.Player, progression.Event, error) {
	player, err := s.Get(ctx, username)
	if err != nil {
		return nil, progression.Event{}, err
	}

	if domain.SkillByID(skillID) == nil {
		return nil, progression.Event{}, ErrUnknownSkill
	}
	if !player.HasSkill(skillID) {
		return nil, progression.Event{}, ErrSkillLocked
	}

	player.XP += skillMasteryXP
	if next := domain.NextSkillInCategory(skillID); next != nil && !player.HasSkill(next.ID) {
		player.UnlockedSkills = append(player.UnlockedSkills, next.ID)
	}

	event, err := progression.Apply(player)
	if err != nil {
		return nil, progression.Event{}, err
	}

	if err := s.accounts.SavePlayer(ctx, username, player); err != nil {
		return nil, progression.Event{}, err
	}
	return player, event, nil
}

// SetTrainingFocus switches between hypertrophy and strength. Entering
// strength focus starts the 3-week cycle clock; leaving it clears the clock.
func (s *playerService) SetTrainingFocus(ctx context.Context, username string, focus domain.TrainingFocus) (*domain.Player, error) {
	if focus != domain.FocusHypertrophy && focus != domain.FocusStrength {
		return nil, errors.New("invalid training focus")
	}

	player, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	player.TrainingFocus = focus
	if focus == domain.FocusStrength {
		now := time.Now().UTC()
		player.StrengthCycleStart = &now
	} else {
		player.StrengthCycleStart = nil
	}

	if err := s.accounts.SavePlayer(ctx, username, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *playerService) SetGender(ctx context.Context, username string, gender domain.Gender) (*domain.Player, error) {
	if gender != domain.GenderMale && gender != domain.GenderFemale {
		return nil, errors.New("invalid gender")
	}

	player, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	player.Gender = gender
	if err := s.accounts.SavePlayer(ctx, username, player); err != nil {
		return nil, err
	}
	return player, nil
}
