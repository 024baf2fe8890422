package catalog

import (
	"regexp"
	"strings"

	"github.com/shopcore/backend/internal/domain/shared"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category represents a product category
type Category struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(255);not null"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, slug string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Slug:       strings.ToLower(strings.TrimSpace(slug)),
	}, nil
}

// Update updates the category's display fields
func (c *Category) Update(name, slug, description, icon string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	if err := validateSlug(slug); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Slug = strings.ToLower(strings.TrimSpace(slug))
	c.Description = description
	c.Icon = icon
	c.Touch()

	return nil
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 255 characters")
	}
	return nil
}

func validateSlug(slug string) error {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 255 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 255 characters")
	}
	if !slugRegex.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug can only contain lowercase letters, numbers, and hyphens")
	}
	return nil
}
