package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
	"github.com/shopcore/backend/internal/domain/shopping"
	"gorm.io/gorm"
)

// GormCartLineRepository implements CartLineRepository using GORM
type GormCartLineRepository struct {
	db *gorm.DB
}

// NewGormCartLineRepository creates a new GormCartLineRepository
func NewGormCartLineRepository(db *gorm.DB) *GormCartLineRepository {
	return &GormCartLineRepository{db: db}
}

// ownerScope narrows a query to the cart lines of one owner
func ownerScope(query *gorm.DB, owner shopping.CartOwner) *gorm.DB {
	if owner.IsUser() {
		return query.Where("user_id = ?", owner.UserID())
	}
	return query.Where("session_id = ?", owner.SessionID())
}

// FindByID finds a cart line by its ID
func (r *GormCartLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*shopping.CartLine, error) {
	var line shopping.CartLine
	if err := r.db.WithContext(ctx).First(&line, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// FindByOwner returns all cart lines of an owner, oldest first
func (r *GormCartLineRepository) FindByOwner(ctx context.Context, owner shopping.CartOwner) ([]shopping.CartLine, error) {
	if owner.IsZero() {
		return []shopping.CartLine{}, nil
	}

	var lines []shopping.CartLine
	if err := ownerScope(r.db.WithContext(ctx), owner).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindByOwnerAndProduct finds the owner's cart line for a product
func (r *GormCartLineRepository) FindByOwnerAndProduct(ctx context.Context, owner shopping.CartOwner, productID uuid.UUID) (*shopping.CartLine, error) {
	var line shopping.CartLine
	if err := ownerScope(r.db.WithContext(ctx), owner).
		Where("product_id = ?", productID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// Save creates or updates a cart line
func (r *GormCartLineRepository) Save(ctx context.Context, line *shopping.CartLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// Delete deletes a cart line
func (r *GormCartLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&shopping.CartLine{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByOwner removes every cart line of an owner. Deleting an already
// empty cart is not an error.
func (r *GormCartLineRepository) DeleteByOwner(ctx context.Context, owner shopping.CartOwner) error {
	if owner.IsZero() {
		return nil
	}
	return ownerScope(r.db.WithContext(ctx), owner).
		Delete(&shopping.CartLine{}).Error
}

// Ensure GormCartLineRepository implements CartLineRepository
var _ shopping.CartLineRepository = (*GormCartLineRepository)(nil)
