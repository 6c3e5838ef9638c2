package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/relatecrm/backend/internal/domain/entities"
)

// UserRepository defines the read-side interface to the user store
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByIDs finds all users whose ID is in the given set
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error)

	// Exists reports whether a user with the given ID exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
