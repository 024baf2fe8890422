package sitecontent

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/sitecontent"
)

// SettingService manages the flat site settings table
type SettingService struct {
	settingRepo sitecontent.SettingRepository
}

// NewSettingService creates a new SettingService
func NewSettingService(settingRepo sitecontent.SettingRepository) *SettingService {
	return &SettingService{settingRepo: settingRepo}
}

// Create creates a new setting with a unique key
func (s *SettingService) Create(ctx context.Context, req CreateSettingRequest) (*SettingResponse, error) {
	if _, err := s.settingRepo.FindByKey(ctx, req.Key); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_KEY", "Setting with this key already exists")
	} else if err != shared.ErrNotFound {
		return nil, err
	}

	setting, err := sitecontent.NewSiteSetting(req.Key, req.Value, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.settingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	resp := ToSettingResponse(setting)
	return &resp, nil
}

// List returns all settings
func (s *SettingService) List(ctx context.Context) ([]SettingResponse, error) {
	settings, err := s.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SettingResponse, len(settings))
	for i := range settings {
		responses[i] = ToSettingResponse(&settings[i])
	}
	return responses, nil
}

// Update edits a setting
func (s *SettingService) Update(ctx context.Context, id uuid.UUID, req UpdateSettingRequest) (*SettingResponse, error) {
	setting, err := s.settingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := setting.Key
	value := setting.Value
	description := setting.Description
	if req.Key != nil {
		key = *req.Key
	}
	if req.Value != nil {
		value = *req.Value
	}
	if req.Description != nil {
		description = *req.Description
	}

	if key != setting.Key {
		if _, err := s.settingRepo.FindByKey(ctx, key); err == nil {
			return nil, shared.NewDomainError("DUPLICATE_KEY", "Setting with this key already exists")
		} else if err != shared.ErrNotFound {
			return nil, err
		}
	}

	if err := setting.Update(key, value, description); err != nil {
		return nil, err
	}

	if err := s.settingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	resp := ToSettingResponse(setting)
	return &resp, nil
}

// Delete removes a setting
func (s *SettingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.settingRepo.Delete(ctx, id)
}
