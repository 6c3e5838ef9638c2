package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/relatecrm/backend/internal/domain/entities"
)

// LeadRepository defines the read-side interface to the lead store
type LeadRepository interface {
	// FindByID finds a lead by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error)

	// FindByIDs finds all leads whose ID is in the given set
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Lead, error)

	// Exists reports whether a lead with the given ID exists
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
