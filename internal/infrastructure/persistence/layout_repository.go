package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/sitecontent"
	"gorm.io/gorm"
)

// GormLayoutRepository implements LayoutRepository using GORM
type GormLayoutRepository struct {
	db *gorm.DB
}

// NewGormLayoutRepository creates a new GormLayoutRepository
func NewGormLayoutRepository(db *gorm.DB) *GormLayoutRepository {
	return &GormLayoutRepository{db: db}
}

// FindByID finds a layout section by its ID
func (r *GormLayoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*sitecontent.LayoutSection, error) {
	var section sitecontent.LayoutSection
	if err := r.db.WithContext(ctx).First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindAll returns all layout sections ordered by sort order
func (r *GormLayoutRepository) FindAll(ctx context.Context) ([]sitecontent.LayoutSection, error) {
	var sections []sitecontent.LayoutSection
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// Save creates or updates a layout section
func (r *GormLayoutRepository) Save(ctx context.Context, section *sitecontent.LayoutSection) error {
	return r.db.WithContext(ctx).Save(section).Error
}

// Delete deletes a layout section
func (r *GormLayoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sitecontent.LayoutSection{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormLayoutRepository implements LayoutRepository
var _ sitecontent.LayoutRepository = (*GormLayoutRepository)(nil)
