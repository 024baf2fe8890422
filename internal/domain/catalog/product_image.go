package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// ProductImage represents one image in a product's ordered gallery.
// Images are owned exclusively by their product and are removed with it.
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL  string    `gorm:"type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(255)"`
	SortOrder int       `gorm:"not null;default:0"`
	IsPrimary bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProductImage creates a new image for a product
func NewProductImage(productID uuid.UUID, imageURL, altText string, sortOrder int, isPrimary bool) (*ProductImage, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot be empty")
	}
	if len(imageURL) > 500 {
		return nil, shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}

	return &ProductImage{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		ImageURL:   imageURL,
		AltText:    altText,
		SortOrder:  sortOrder,
		IsPrimary:  isPrimary,
	}, nil
}
