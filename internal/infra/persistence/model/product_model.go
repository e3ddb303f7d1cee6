package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Photos are stored in their own table so listings never load binary data.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Details    string    `gorm:"type:text"`
	Price      float64   `gorm:"type:decimal(12,2);not null"`
	StockCount int       `gorm:"not null;default:0;check:stock_count >= 0"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *CategoryModel        `gorm:"foreignKey:CategoryID"`
	Merchant *MerchantProfileModel `gorm:"foreignKey:MerchantID;references:UserID"`
	Photos   []ProductPhotoModel   `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductPhotoModel is the GORM-specific struct for the 'product_photos' table.
// Photo bytes live in a bytea column and are only read on direct photo requests.
type ProductPhotoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Data        []byte    `gorm:"type:bytea;not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductPhotoModel) TableName() string {
	return "product_photos"
}
