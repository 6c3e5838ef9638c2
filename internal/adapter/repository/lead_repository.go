package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
)

// leadRepository implements the LeadRepository interface
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) repositories.LeadRepository {
	return &leadRepository{db: db}
}

// FindByID finds a lead by ID
func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	var lead entities.Lead
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lead).Error

	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// FindByIDs finds all leads whose ID is in the given set
func (r *leadRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Lead, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var leads []*entities.Lead
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&leads).Error
	return leads, err
}

// Exists reports whether a lead with the given ID exists
func (r *leadRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Lead{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
