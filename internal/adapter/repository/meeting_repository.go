package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create persists a new meeting with status active
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting.Status == "" {
		meeting.Status = entities.MeetingStatusActive
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID regardless of status
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// SoftDelete marks one active meeting as deleted. The status guard makes a
// repeat delete of an already-deleted meeting report not found.
func (r *meetingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ? AND status = ?", id, entities.MeetingStatusActive).
		Update("status", entities.MeetingStatusDeleted)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeleteMany marks every matching meeting as deleted. Best-effort bulk
// semantics: unknown identifiers are skipped without error.
func (r *meetingRepository) SoftDeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id IN ? AND status = ?", ids, entities.MeetingStatusActive).
		Update("status", entities.MeetingStatusDeleted)

	return result.RowsAffected, result.Error
}

// ListByScope retrieves all active meetings matching the scope
func (r *meetingRepository) ListByScope(ctx context.Context, scope repositories.MeetingScope) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting

	query := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("status = ?", entities.MeetingStatusActive)

	if scope.CreatedBy != nil {
		query = query.Where("created_by = ?", *scope.CreatedBy)
	}

	err := query.Order("created_at DESC").Find(&meetings).Error
	return meetings, err
}
