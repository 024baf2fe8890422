package sitecontent

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/sitecontent"
)

// CreateLayoutSectionRequest represents a request to create a layout section
type CreateLayoutSectionRequest struct {
	SectionName string `json:"section_name" binding:"required,min=1,max=255"`
	SectionType string `json:"section_type" binding:"required,min=1,max=100"`
	Content     string `json:"content"`
	Settings    string `json:"settings"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateLayoutSectionRequest represents a request to update a layout section
type UpdateLayoutSectionRequest struct {
	SectionName *string `json:"section_name" binding:"omitempty,min=1,max=255"`
	SectionType *string `json:"section_type" binding:"omitempty,min=1,max=100"`
	Content     *string `json:"content"`
	Settings    *string `json:"settings"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// LayoutSectionResponse represents a layout section in API responses
type LayoutSectionResponse struct {
	ID          uuid.UUID `json:"id"`
	SectionName string    `json:"section_name"`
	SectionType string    `json:"section_type"`
	Content     string    `json:"content"`
	Settings    string    `json:"settings"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateSettingRequest represents a request to create a site setting
type CreateSettingRequest struct {
	Key         string `json:"key" binding:"required,min=1,max=255"`
	Value       string `json:"value"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateSettingRequest represents a request to update a site setting
type UpdateSettingRequest struct {
	Key         *string `json:"key" binding:"omitempty,min=1,max=255"`
	Value       *string `json:"value"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// SettingResponse represents a site setting in API responses
type SettingResponse struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToLayoutSectionResponse converts a domain LayoutSection to its response
func ToLayoutSectionResponse(s *sitecontent.LayoutSection) LayoutSectionResponse {
	return LayoutSectionResponse{
		ID:          s.ID,
		SectionName: s.SectionName,
		SectionType: s.SectionType,
		Content:     s.Content,
		Settings:    s.Settings,
		IsActive:    s.IsActive,
		SortOrder:   s.SortOrder,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSettingResponse converts a domain SiteSetting to its response
func ToSettingResponse(s *sitecontent.SiteSetting) SettingResponse {
	return SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
