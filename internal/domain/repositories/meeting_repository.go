package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/relatecrm/backend/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create persists a new meeting with status active
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID regardless of status
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// SoftDelete marks one active meeting as deleted.
	// Returns gorm.ErrRecordNotFound when no active meeting matches.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// SoftDeleteMany marks every matching meeting as deleted and returns
	// the number of records affected. Unknown identifiers are skipped.
	SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)

	// ListByScope retrieves all active meetings matching the scope
	ListByScope(ctx context.Context, scope MeetingScope) ([]*entities.Meeting, error)
}

// MeetingScope is the query predicate determining which meetings a
// requester may see. It is resolved once per request from the requester's
// role and never re-derived downstream.
type MeetingScope struct {
	// CreatedBy narrows the listing to one creator. Nil means all creators,
	// which only the privileged role may hold.
	CreatedBy *uuid.UUID
}
