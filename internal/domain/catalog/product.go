package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDraft    ProductStatus = "draft"
)

// Product represents a sellable item in the catalog.
// It is the aggregate root for product operations; images live and die
// with their product.
type Product struct {
	shared.BaseEntity
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title           string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ImageURL        string          `gorm:"type:varchar(500)"`
	Status          ProductStatus   `gorm:"type:varchar(20);not null;default:'active';index"`
	Featured        bool            `gorm:"not null;default:false;index"`
	SKU             *string         `gorm:"type:varchar(100);uniqueIndex"`
	StockQuantity   int             `gorm:"not null;default:0"`
	Weight          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Dimensions      string          `gorm:"type:varchar(100)"`
	MetaTitle       string          `gorm:"type:varchar(255)"`
	MetaDescription string          `gorm:"type:text"`
	Images          []ProductImage  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(categoryID uuid.UUID, title string, price decimal.Decimal) (*Product, error) {
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		CategoryID: categoryID,
		Title:      strings.TrimSpace(title),
		Price:      price,
		Status:     ProductStatusActive,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(title, description string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(title)
	p.Description = description
	p.Touch()

	return nil
}

// SetCategory moves the product to a different category
func (p *Product) SetCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	p.CategoryID = categoryID
	p.Touch()
	return nil
}

// SetPrice updates the selling price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetStock sets the available stock quantity
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	p.StockQuantity = quantity
	p.Touch()
	return nil
}

// SetStatus sets the product status
func (p *Product) SetStatus(status ProductStatus) error {
	switch status {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDraft:
		p.Status = status
		p.Touch()
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown product status")
	}
}

// SetFeatured toggles the featured flag
func (p *Product) SetFeatured(featured bool) {
	p.Featured = featured
	p.Touch()
}

// SetSKU sets the optional stock keeping unit
func (p *Product) SetSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		p.SKU = nil
		p.Touch()
		return nil
	}
	if len(sku) > 100 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 100 characters")
	}
	p.SKU = &sku
	p.Touch()
	return nil
}

// HasStock reports whether the requested quantity is covered by current stock.
// Stock is not reserved by carts; this is a point-in-time check.
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.StockQuantity
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if len(title) > 255 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 255 characters")
	}
	return nil
}
