package service

import (
	"context"
	"sync"
	"time"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/generator"
	"systemfit/leveling-app/internal/repository"
)

// memAccountStore is an in-memory repository.AccountStore for service tests.
type memAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	saveErr  error
}

func newMemAccountStore() *memAccountStore {
	return &memAccountStore{accounts: make(map[string]*domain.Account)}
}

func (m *memAccountStore) Create(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Username]; ok {
		return repository.ErrAlreadyExists
	}
	copied := *account
	m.accounts[account.Username] = &copied
	return nil
}

func (m *memAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (m *memAccountStore) SavePlayer(ctx context.Context, username string, player *domain.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	account, ok := m.accounts[username]
	if !ok {
		return repository.ErrNotFound
	}
	account.Player = *player
	return nil
}

func (m *memAccountStore) seed(username string, player *domain.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[username] = &domain.Account{Username: username, Player: *player}
}

// stubGenerator is a canned generator.Client. Zero value behaves as a
// disabled backend.
type stubGenerator struct {
	enabled       bool
	plan          *generator.GeneratedPlan
	planErr       error
	alternatives  []domain.Exercise
	altErr        error
	analysis      *generator.SkillAnalysis
	analysisErr   error
	chatReply     string
	chatErr       error
	searchResult  *generator.SearchResult
	searchErr     error
	analyzedText  string
	analyzeErr    error
	visualization []byte
	visualizeErr  error
	planCalls     int
}

func (s *stubGenerator) Enabled() bool { return s.enabled }

func (s *stubGenerator) GeneratePlan(ctx context.Context, req generator.PlanRequest) (*generator.GeneratedPlan, error) {
	s.planCalls++
	return s.plan, s.planErr
}

func (s *stubGenerator) GenerateAlternatives(ctx context.Context, exerciseName, muscleContext string) ([]domain.Exercise, error) {
	return s.alternatives, s.altErr
}

func (s *stubGenerator) GenerateSkillAnalysis(ctx context.Context, skillName string) (*generator.SkillAnalysis, error) {
	return s.analysis, s.analysisErr
}

func (s *stubGenerator) GenerateVisualization(ctx context.Context, prompt string) ([]byte, error) {
	return s.visualization, s.visualizeErr
}

func (s *stubGenerator) Chat(ctx context.Context, message string, history []generator.ChatTurn) (string, error) {
	return s.chatReply, s.chatErr
}

func (s *stubGenerator) SearchKnowledge(ctx context.Context, query string) (*generator.SearchResult, error) {
	return s.searchResult, s.searchErr
}

func (s *stubGenerator) AnalyzeImage(ctx context.Context, image []byte, prompt string) (string, error) {
	return s.analyzedText, s.analyzeErr
}

// stubFileStorage records object-storage operations for chat service tests.
type stubFileStorage struct {
	uploadErr   error
	presignErr  error
	presignURL  string
	uploadedKey string
	deletedKeys []string
}

func (s *stubFileStorage) UploadObject(ctx context.Context, objectKey string, contentType string, data []byte) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploadedKey = objectKey
	return nil
}

func (s *stubFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return s.presignURL, nil
}

func (s *stubFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	s.deletedKeys = append(s.deletedKeys, objectKey)
	return nil
}
