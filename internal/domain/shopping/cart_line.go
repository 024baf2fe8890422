package shopping

import (
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/shared"
)

// CartLine is one (owner, product) entry in a shopping cart. The owner is
// either a user or an anonymous session, never both; the two ID columns
// exist only as storage for CartOwner. At most one line exists per
// (owner, product) pair; a duplicate add merges into the existing line.
//
// Cart lines reserve nothing: stock is checked against the product's
// current quantity at mutation time and decremented never (inventory
// accounting against fulfilled orders is external).
type CartLine struct {
	shared.BaseEntity
	UserID    *uuid.UUID `gorm:"type:uuid;index:idx_cart_user_product,unique"`
	SessionID *string    `gorm:"type:varchar(64);index:idx_cart_session_product,unique"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null;index:idx_cart_user_product,unique;index:idx_cart_session_product,unique"`
	Quantity  int        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartLine) TableName() string {
	return "cart_lines"
}

// NewCartLine creates a cart line for a fresh (owner, product) pair.
// The quantity must already have passed the stock check.
func NewCartLine(owner CartOwner, productID uuid.UUID, quantity int) (*CartLine, error) {
	if owner.IsZero() {
		return nil, shared.NewDomainError("INVALID_OWNER", "Cart owner cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	line := &CartLine{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
	}
	if owner.IsUser() {
		userID := owner.UserID()
		line.UserID = &userID
	} else {
		sessionID := owner.SessionID()
		line.SessionID = &sessionID
	}

	return line, nil
}

// Owner reconstructs the tagged owner from the storage columns
func (l *CartLine) Owner() CartOwner {
	if l.UserID != nil {
		return UserOwner(*l.UserID)
	}
	if l.SessionID != nil {
		return SessionOwner(*l.SessionID)
	}
	return CartOwner{}
}

// Merge adds quantity to an existing line, clamping the result to the
// product's current stock. Merging clamps where creating rejects: a
// deliberate asymmetry kept for compatibility with existing clients.
func (l *CartLine) Merge(quantity, stockQuantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	l.Quantity += quantity
	if l.Quantity > stockQuantity {
		l.Quantity = stockQuantity
	}
	l.Touch()

	return nil
}

// SetQuantity overwrites the line's quantity. Unlike Merge there is no
// clamping; the caller rejects oversell before calling.
func (l *CartLine) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	l.Quantity = quantity
	l.Touch()
	return nil
}
