package sitecontent

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/sitecontent"
)

// LayoutService manages the storefront's layout sections
type LayoutService struct {
	layoutRepo sitecontent.LayoutRepository
}

// NewLayoutService creates a new LayoutService
func NewLayoutService(layoutRepo sitecontent.LayoutRepository) *LayoutService {
	return &LayoutService{layoutRepo: layoutRepo}
}

// Create creates a new layout section
func (s *LayoutService) Create(ctx context.Context, req CreateLayoutSectionRequest) (*LayoutSectionResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	section, err := sitecontent.NewLayoutSection(req.SectionName, req.SectionType, req.Content, req.Settings, isActive, req.SortOrder)
	if err != nil {
		return nil, err
	}

	if err := s.layoutRepo.Save(ctx, section); err != nil {
		return nil, err
	}

	resp := ToLayoutSectionResponse(section)
	return &resp, nil
}

// List returns all sections in display order
func (s *LayoutService) List(ctx context.Context) ([]LayoutSectionResponse, error) {
	sections, err := s.layoutRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]LayoutSectionResponse, len(sections))
	for i := range sections {
		responses[i] = ToLayoutSectionResponse(&sections[i])
	}
	return responses, nil
}

// Update edits a layout section
func (s *LayoutService) Update(ctx context.Context, id uuid.UUID, req UpdateLayoutSectionRequest) (*LayoutSectionResponse, error) {
	section, err := s.layoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := section.SectionName
	sectionType := section.SectionType
	content := section.Content
	settings := section.Settings
	isActive := section.IsActive
	sortOrder := section.SortOrder
	if req.SectionName != nil {
		name = *req.SectionName
	}
	if req.SectionType != nil {
		sectionType = *req.SectionType
	}
	if req.Content != nil {
		content = *req.Content
	}
	if req.Settings != nil {
		settings = *req.Settings
	}
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	if err := section.Update(name, sectionType, content, settings, isActive, sortOrder); err != nil {
		return nil, err
	}

	if err := s.layoutRepo.Save(ctx, section); err != nil {
		return nil, err
	}

	resp := ToLayoutSectionResponse(section)
	return &resp, nil
}

// Delete removes a layout section
func (s *LayoutService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.layoutRepo.Delete(ctx, id)
}
