package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Icon        string `json:"icon" binding:"max=255"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Icon        *string `json:"icon" binding:"omitempty,max=255"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductImageInput represents one gallery image supplied with a product
type ProductImageInput struct {
	ImageURL  string `json:"image_url" binding:"required,max=500"`
	AltText   string `json:"alt_text" binding:"max=255"`
	SortOrder int    `json:"sort_order"`
	IsPrimary bool   `json:"is_primary"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	CategoryID      uuid.UUID           `json:"category_id" binding:"required"`
	Title           string              `json:"title" binding:"required,min=1,max=255"`
	Description     string              `json:"description" binding:"max=10000"`
	Price           decimal.Decimal     `json:"price" binding:"required"`
	ImageURL        string              `json:"image_url" binding:"max=500"`
	Status          string              `json:"status" binding:"omitempty,oneof=active inactive draft"`
	Featured        bool                `json:"featured"`
	SKU             *string             `json:"sku" binding:"omitempty,max=100"`
	StockQuantity   int                 `json:"stock_quantity" binding:"min=0"`
	Weight          *decimal.Decimal    `json:"weight"`
	Dimensions      string              `json:"dimensions" binding:"max=100"`
	MetaTitle       string              `json:"meta_title" binding:"max=255"`
	MetaDescription string              `json:"meta_description" binding:"max=2000"`
	Images          []ProductImageInput `json:"images" binding:"omitempty,dive"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	CategoryID      *uuid.UUID       `json:"category_id"`
	Title           *string          `json:"title" binding:"omitempty,min=1,max=255"`
	Description     *string          `json:"description" binding:"omitempty,max=10000"`
	Price           *decimal.Decimal `json:"price"`
	ImageURL        *string          `json:"image_url" binding:"omitempty,max=500"`
	Status          *string          `json:"status" binding:"omitempty,oneof=active inactive draft"`
	Featured        *bool            `json:"featured"`
	SKU             *string          `json:"sku" binding:"omitempty,max=100"`
	StockQuantity   *int             `json:"stock_quantity" binding:"omitempty,min=0"`
	Weight          *decimal.Decimal `json:"weight"`
	Dimensions      *string          `json:"dimensions" binding:"omitempty,max=100"`
	MetaTitle       *string          `json:"meta_title" binding:"omitempty,max=255"`
	MetaDescription *string          `json:"meta_description" binding:"omitempty,max=2000"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	Status     string     `form:"status" binding:"omitempty,oneof=active inactive draft all"`
	CategoryID *uuid.UUID `form:"category_id"`
	Featured   *bool      `form:"featured"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PerPage    int        `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// ProductImageResponse represents a gallery image in API responses
type ProductImageResponse struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	SortOrder int       `json:"sort_order"`
	IsPrimary bool      `json:"is_primary"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID              uuid.UUID              `json:"id"`
	CategoryID      uuid.UUID              `json:"category_id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Price           decimal.Decimal        `json:"price"`
	ImageURL        string                 `json:"image_url"`
	Status          string                 `json:"status"`
	Featured        bool                   `json:"featured"`
	SKU             *string                `json:"sku"`
	StockQuantity   int                    `json:"stock_quantity"`
	Weight          decimal.Decimal        `json:"weight"`
	Dimensions      string                 `json:"dimensions"`
	MetaTitle       string                 `json:"meta_title"`
	MetaDescription string                 `json:"meta_description"`
	Images          []ProductImageResponse `json:"images"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ProductListResult represents one page of the product list
type ProductListResult struct {
	Products    []ProductResponse `json:"products"`
	Total       int64             `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"current_page"`
	PerPage     int               `json:"per_page"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	images := make([]ProductImageResponse, len(p.Images))
	for i, img := range p.Images {
		images[i] = ProductImageResponse{
			ID:        img.ID,
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			SortOrder: img.SortOrder,
			IsPrimary: img.IsPrimary,
		}
	}

	return ProductResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		ImageURL:        p.ImageURL,
		Status:          string(p.Status),
		Featured:        p.Featured,
		SKU:             p.SKU,
		StockQuantity:   p.StockQuantity,
		Weight:          p.Weight,
		Dimensions:      p.Dimensions,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Images:          images,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
