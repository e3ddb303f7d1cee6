package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItemModel is the GORM-specific struct for the 'wishlist_items' table.
// The composite unique index keeps wishlist additions idempotent per customer.
type WishlistItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customer_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customer_product"`
	CreatedAt  time.Time `gorm:"index"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
