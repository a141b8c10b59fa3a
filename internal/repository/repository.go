package repository

import (
	"context"

	"systemfit/leveling-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrAlreadyExists = RepositoryError("already exists")
	ErrUpdateFailed  = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AccountStore is the persistence surface for player accounts. The player
// snapshot is saved whole on every mutation; there are no partial updates.
// The single-writer assumption (one active session per username) is a
// documented precondition, not something this layer enforces.
type AccountStore interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	SavePlayer(ctx context.Context, username string, player *domain.Player) error
}
