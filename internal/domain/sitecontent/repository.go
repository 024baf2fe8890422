package sitecontent

import (
	"context"

	"github.com/google/uuid"
)

// LayoutRepository defines the persistence interface for layout sections.
// FindAll returns sections ordered by sort_order.
type LayoutRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LayoutSection, error)
	FindAll(ctx context.Context) ([]LayoutSection, error)
	Save(ctx context.Context, section *LayoutSection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingRepository defines the persistence interface for site settings
type SettingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SiteSetting, error)
	FindByKey(ctx context.Context, key string) (*SiteSetting, error)
	FindAll(ctx context.Context) ([]SiteSetting, error)
	Save(ctx context.Context, setting *SiteSetting) error
	Delete(ctx context.Context, id uuid.UUID) error
}
