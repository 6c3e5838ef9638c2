package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/relatecrm/backend/internal/domain/entities"
)

// ContactRepository defines the read-side interface to the contact store
type ContactRepository interface {
	// FindByID finds a contact by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error)

	// FindByIDs finds all contacts whose ID is in the given set
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Contact, error)

	// Exists reports whether a contact with the given ID exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
