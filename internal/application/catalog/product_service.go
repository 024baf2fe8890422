package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
)

// FeaturedLimit caps the number of products on the featured shelf
const FeaturedLimit = 8

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product, optionally with its image gallery
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.CategoryID, req.Title, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Title, req.Description); err != nil {
			return nil, err
		}
	}
	if req.Status != "" {
		if err := product.SetStatus(catalog.ProductStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.StockQuantity > 0 {
		if err := product.SetStock(req.StockQuantity); err != nil {
			return nil, err
		}
	}
	if req.SKU != nil {
		exists, err := s.productRepo.ExistsBySKU(ctx, *req.SKU)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("DUPLICATE_SKU", "Product with this SKU already exists")
		}
		if err := product.SetSKU(*req.SKU); err != nil {
			return nil, err
		}
	}
	product.SetFeatured(req.Featured)
	product.ImageURL = req.ImageURL
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	product.Dimensions = req.Dimensions
	product.MetaTitle = req.MetaTitle
	product.MetaDescription = req.MetaDescription

	for _, input := range req.Images {
		image, err := catalog.NewProductImage(product.ID, input.ImageURL, input.AltText, input.SortOrder, input.IsPrimary)
		if err != nil {
			return nil, err
		}
		product.Images = append(product.Images, *image)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Get retrieves a product with its image gallery
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns one page of products. Status defaults to active; passing
// status=all lifts the filter.
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*ProductListResult, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PerPage > 0 {
		domainFilter.PageSize = filter.PerPage
	}

	switch filter.Status {
	case "":
		domainFilter.Filters["status"] = string(catalog.ProductStatusActive)
	case "all":
	default:
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Featured != nil {
		domainFilter.Filters["featured"] = *filter.Featured
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}

	pages := int(total) / domainFilter.PageSize
	if int(total)%domainFilter.PageSize > 0 {
		pages++
	}

	return &ProductListResult{
		Products:    responses,
		Total:       total,
		Pages:       pages,
		CurrentPage: domainFilter.Page,
		PerPage:     domainFilter.PageSize,
	}, nil
}

// Featured returns the featured shelf: active featured products, capped
func (s *ProductService) Featured(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindFeatured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

// Update edits a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if req.Title != nil || req.Description != nil {
		title := product.Title
		description := product.Description
		if req.Title != nil {
			title = *req.Title
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(title, description); err != nil {
			return nil, err
		}
	}

	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := product.SetStatus(catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.StockQuantity != nil {
		if err := product.SetStock(*req.StockQuantity); err != nil {
			return nil, err
		}
	}
	if req.SKU != nil && (product.SKU == nil || *req.SKU != *product.SKU) {
		exists, err := s.productRepo.ExistsBySKU(ctx, *req.SKU)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("DUPLICATE_SKU", "Product with this SKU already exists")
		}
		if err := product.SetSKU(*req.SKU); err != nil {
			return nil, err
		}
	}
	if req.Featured != nil {
		product.SetFeatured(*req.Featured)
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}
	if req.Dimensions != nil {
		product.Dimensions = *req.Dimensions
	}
	if req.MetaTitle != nil {
		product.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		product.MetaDescription = *req.MetaDescription
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product and its images
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
