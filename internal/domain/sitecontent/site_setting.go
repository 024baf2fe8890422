package sitecontent

import (
	"strings"

	"github.com/shopcore/backend/internal/domain/shared"
)

// SiteSetting is one key/value pair in the flat settings table
type SiteSetting struct {
	shared.BaseEntity
	Key         string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Value       string `gorm:"type:text"`
	Description string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (SiteSetting) TableName() string {
	return "site_settings"
}

// NewSiteSetting creates a new setting
func NewSiteSetting(key, value, description string) (*SiteSetting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Setting key cannot be empty")
	}
	if len(key) > 255 {
		return nil, shared.NewDomainError("INVALID_KEY", "Setting key cannot exceed 255 characters")
	}

	return &SiteSetting{
		BaseEntity:  shared.NewBaseEntity(),
		Key:         strings.TrimSpace(key),
		Value:       value,
		Description: description,
	}, nil
}

// Update overwrites the setting's fields
func (s *SiteSetting) Update(key, value, description string) error {
	if strings.TrimSpace(key) == "" {
		return shared.NewDomainError("INVALID_KEY", "Setting key cannot be empty")
	}

	s.Key = strings.TrimSpace(key)
	s.Value = value
	s.Description = description
	s.Touch()

	return nil
}
