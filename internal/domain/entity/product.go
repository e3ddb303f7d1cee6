package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry owned by a single merchant. Relationships are
// referenced by id; the optional Category, Merchant and PhotoIDs fields are
// populated by explicit repository preloads when a listing needs them.
type Product struct {
	ID         uuid.UUID
	Name       string
	Details    string
	Price      float64 // Unit price, never negative.
	StockCount int     // Units in stock, never negative.
	CategoryID uuid.UUID
	MerchantID uuid.UUID // users.id of the owning merchant.
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *Category        // Populated on listing reads.
	Merchant *MerchantProfile // Populated on listing reads.
	PhotoIDs []uuid.UUID      // Populated on listing reads.
}

// ProductPhoto stores one binary image payload for a product. Photos are
// immutable after upload.
type ProductPhoto struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Data        []byte
	ContentType string
	CreatedAt   time.Time
}
