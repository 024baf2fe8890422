package sitecontent

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/sitecontent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSettingRepository is a mock implementation of SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*sitecontent.SiteSetting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sitecontent.SiteSetting), args.Error(1)
}

func (m *MockSettingRepository) FindByKey(ctx context.Context, key string) (*sitecontent.SiteSetting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sitecontent.SiteSetting), args.Error(1)
}

func (m *MockSettingRepository) FindAll(ctx context.Context) ([]sitecontent.SiteSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sitecontent.SiteSetting), args.Error(1)
}

func (m *MockSettingRepository) Save(ctx context.Context, setting *sitecontent.SiteSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLayoutRepository is a mock implementation of LayoutRepository
type MockLayoutRepository struct {
	mock.Mock
}

func (m *MockLayoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*sitecontent.LayoutSection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sitecontent.LayoutSection), args.Error(1)
}

func (m *MockLayoutRepository) FindAll(ctx context.Context) ([]sitecontent.LayoutSection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sitecontent.LayoutSection), args.Error(1)
}

func (m *MockLayoutRepository) Save(ctx context.Context, section *sitecontent.LayoutSection) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockLayoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSettingService_Create(t *testing.T) {
	t.Run("creates setting with unique key", func(t *testing.T) {
		repo := new(MockSettingRepository)
		svc := NewSettingService(repo)

		repo.On("FindByKey", mock.Anything, "site_title").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*sitecontent.SiteSetting")).Return(nil)

		resp, err := svc.Create(context.Background(), CreateSettingRequest{
			Key:   "site_title",
			Value: "Shopcore",
		})

		require.NoError(t, err)
		assert.Equal(t, "site_title", resp.Key)
		assert.Equal(t, "Shopcore", resp.Value)
	})

	t.Run("rejects duplicate key", func(t *testing.T) {
		repo := new(MockSettingRepository)
		svc := NewSettingService(repo)

		existing, err := sitecontent.NewSiteSetting("site_title", "Old", "")
		require.NoError(t, err)
		repo.On("FindByKey", mock.Anything, "site_title").Return(existing, nil)

		_, err = svc.Create(context.Background(), CreateSettingRequest{Key: "site_title"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_KEY", domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestLayoutService_Create(t *testing.T) {
	t.Run("defaults active and normalizes empty json", func(t *testing.T) {
		repo := new(MockLayoutRepository)
		svc := NewLayoutService(repo)

		repo.On("Save", mock.Anything, mock.AnythingOfType("*sitecontent.LayoutSection")).Return(nil)

		resp, err := svc.Create(context.Background(), CreateLayoutSectionRequest{
			SectionName: "Hero",
			SectionType: "hero_banner",
		})

		require.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "{}", resp.Content)
		assert.Equal(t, "{}", resp.Settings)
	})

	t.Run("rejects empty section name", func(t *testing.T) {
		repo := new(MockLayoutRepository)
		svc := NewLayoutService(repo)

		_, err := svc.Create(context.Background(), CreateLayoutSectionRequest{
			SectionName: "  ",
			SectionType: "hero_banner",
		})
		assert.Error(t, err)
	})
}

func TestLayoutService_Update(t *testing.T) {
	repo := new(MockLayoutRepository)
	svc := NewLayoutService(repo)

	section, err := sitecontent.NewLayoutSection("Hero", "hero_banner", `{"title":"hi"}`, "{}", true, 0)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, section.ID).Return(section, nil)
	repo.On("Save", mock.Anything, section).Return(nil)

	inactive := false
	order := 3
	resp, err := svc.Update(context.Background(), section.ID, UpdateLayoutSectionRequest{
		IsActive:  &inactive,
		SortOrder: &order,
	})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.Equal(t, 3, resp.SortOrder)
	assert.Equal(t, `{"title":"hi"}`, resp.Content)
}
