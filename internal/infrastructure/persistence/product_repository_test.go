package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupCatalogTestDB creates an in-memory SQLite database with the
// catalog tables migrated
func setupCatalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Category{}, &catalog.Product{}, &catalog.ProductImage{})
	require.NoError(t, err)

	return db
}

func mustProduct(t *testing.T, title string, price string) *catalog.Product {
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product, err := catalog.NewProduct(uuid.New(), title, p)
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_FindByIDWithImages(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "Walnut Desk", "249.99")
	require.NoError(t, repo.Save(ctx, product))

	second, err := catalog.NewProductImage(product.ID, "https://cdn.example.com/desk-side.jpg", "side view", 1, false)
	require.NoError(t, err)
	first, err := catalog.NewProductImage(product.ID, "https://cdn.example.com/desk-front.jpg", "front view", 0, true)
	require.NoError(t, err)
	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(first).Error)

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, found.Images, 2)
	assert.Equal(t, "https://cdn.example.com/desk-front.jpg", found.Images[0].ImageURL)
	assert.True(t, found.Images[0].IsPrimary)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_Search(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustProduct(t, "Walnut Desk", "249.99")))
	require.NoError(t, repo.Save(ctx, mustProduct(t, "Oak Chair", "89.00")))
	require.NoError(t, repo.Save(ctx, mustProduct(t, "Desk Lamp", "25.00")))

	filter := shared.DefaultFilter()
	filter.Search = "desk"

	products, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	total, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGormProductRepository_Filters(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	active := mustProduct(t, "Active Item", "10.00")
	require.NoError(t, repo.Save(ctx, active))

	draft := mustProduct(t, "Draft Item", "10.00")
	require.NoError(t, draft.SetStatus(catalog.ProductStatusDraft))
	require.NoError(t, repo.Save(ctx, draft))

	filter := shared.DefaultFilter()
	filter.Filters["status"] = string(catalog.ProductStatusActive)

	products, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Active Item", products[0].Title)

	byCategory := shared.DefaultFilter()
	byCategory.Filters["category_id"] = active.CategoryID.String()

	products, err = repo.FindAll(ctx, byCategory)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, active.ID, products[0].ID)
}

func TestGormProductRepository_FindFeatured(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	featured := mustProduct(t, "Featured Active", "10.00")
	featured.SetFeatured(true)
	require.NoError(t, repo.Save(ctx, featured))

	hidden := mustProduct(t, "Featured Draft", "10.00")
	hidden.SetFeatured(true)
	require.NoError(t, hidden.SetStatus(catalog.ProductStatusDraft))
	require.NoError(t, repo.Save(ctx, hidden))

	require.NoError(t, repo.Save(ctx, mustProduct(t, "Plain Active", "10.00")))

	products, err := repo.FindFeatured(ctx, 8)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Featured Active", products[0].Title)
}

func TestGormProductRepository_DeleteRemovesImages(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "Walnut Desk", "249.99")
	require.NoError(t, repo.Save(ctx, product))

	image, err := catalog.NewProductImage(product.ID, "https://cdn.example.com/desk.jpg", "desk", 0, true)
	require.NoError(t, err)
	require.NoError(t, db.Create(image).Error)

	keeper := mustProduct(t, "Oak Chair", "89.00")
	require.NoError(t, repo.Save(ctx, keeper))
	keeperImage, err := catalog.NewProductImage(keeper.ID, "https://cdn.example.com/chair.jpg", "chair", 0, true)
	require.NoError(t, err)
	require.NoError(t, db.Create(keeperImage).Error)

	require.NoError(t, repo.Delete(ctx, product.ID))

	var orphans int64
	require.NoError(t, db.Model(&catalog.ProductImage{}).
		Where("product_id = ?", product.ID).
		Count(&orphans).Error)
	assert.Equal(t, int64(0), orphans)

	// Images of other products are untouched
	var remaining int64
	require.NoError(t, db.Model(&catalog.ProductImage{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	assert.ErrorIs(t, repo.Delete(ctx, product.ID), shared.ErrNotFound)
}

func TestGormProductRepository_ExistsBySKU(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	product := mustProduct(t, "With SKU", "10.00")
	require.NoError(t, product.SetSKU("DESK-001"))
	require.NoError(t, repo.Save(ctx, product))

	exists, err := repo.ExistsBySKU(ctx, "DESK-001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBySKU(ctx, "NOPE-999")
	require.NoError(t, err)
	assert.False(t, exists)
}
