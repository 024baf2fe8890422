package sitecontent

import (
	"strings"

	"github.com/shopcore/backend/internal/domain/shared"
)

// LayoutSection is one block of the storefront page layout. Content and
// Settings are opaque JSON payloads owned by the frontend; the backend
// only stores and orders them.
type LayoutSection struct {
	shared.BaseEntity
	SectionName string `gorm:"type:varchar(255);not null"`
	SectionType string `gorm:"type:varchar(100);not null"`
	Content     string `gorm:"type:jsonb;not null;default:'{}'"`
	Settings    string `gorm:"type:jsonb;not null;default:'{}'"`
	IsActive    bool   `gorm:"not null;default:true"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (LayoutSection) TableName() string {
	return "layout_sections"
}

// NewLayoutSection creates a new layout section
func NewLayoutSection(name, sectionType, content, settings string, isActive bool, sortOrder int) (*LayoutSection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_SECTION_NAME", "Section name cannot be empty")
	}
	if strings.TrimSpace(sectionType) == "" {
		return nil, shared.NewDomainError("INVALID_SECTION_TYPE", "Section type cannot be empty")
	}

	return &LayoutSection{
		BaseEntity:  shared.NewBaseEntity(),
		SectionName: name,
		SectionType: sectionType,
		Content:     normalizeJSON(content),
		Settings:    normalizeJSON(settings),
		IsActive:    isActive,
		SortOrder:   sortOrder,
	}, nil
}

// Update overwrites the section's fields
func (s *LayoutSection) Update(name, sectionType, content, settings string, isActive bool, sortOrder int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_SECTION_NAME", "Section name cannot be empty")
	}
	if strings.TrimSpace(sectionType) == "" {
		return shared.NewDomainError("INVALID_SECTION_TYPE", "Section type cannot be empty")
	}

	s.SectionName = name
	s.SectionType = sectionType
	s.Content = normalizeJSON(content)
	s.Settings = normalizeJSON(settings)
	s.IsActive = isActive
	s.SortOrder = sortOrder
	s.Touch()

	return nil
}

func normalizeJSON(payload string) string {
	if strings.TrimSpace(payload) == "" {
		return "{}"
	}
	return payload
}
