package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
)

// contactRepository implements the ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) repositories.ContactRepository {
	return &contactRepository{db: db}
}

// FindByID finds a contact by ID
func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	var contact entities.Contact
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contact).Error

	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// FindByIDs finds all contacts whose ID is in the given set
func (r *contactRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var contacts []*entities.Contact
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&contacts).Error
	return contacts, err
}

// Exists reports whether a contact with the given ID exists
func (r *contactRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Contact{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
