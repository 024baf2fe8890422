package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/sitecontent"
	"gorm.io/gorm"
)

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// FindByID finds a setting by its ID
func (r *GormSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*sitecontent.SiteSetting, error) {
	var setting sitecontent.SiteSetting
	if err := r.db.WithContext(ctx).First(&setting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// FindByKey finds a setting by its key
func (r *GormSettingRepository) FindByKey(ctx context.Context, key string) (*sitecontent.SiteSetting, error) {
	var setting sitecontent.SiteSetting
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// FindAll returns all settings ordered by key
func (r *GormSettingRepository) FindAll(ctx context.Context) ([]sitecontent.SiteSetting, error) {
	var settings []sitecontent.SiteSetting
	if err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// Save creates or updates a setting
func (r *GormSettingRepository) Save(ctx context.Context, setting *sitecontent.SiteSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

// Delete deletes a setting
func (r *GormSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&sitecontent.SiteSetting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSettingRepository implements SettingRepository
var _ sitecontent.SettingRepository = (*GormSettingRepository)(nil)
