package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// TotalAmount snapshots the price at checkout so later product edits
// never change what the customer agreed to pay.
type OrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Count        int       `gorm:"not null;check:count > 0"`
	TotalAmount  float64   `gorm:"type:decimal(12,2);not null"`
	Status       string    `gorm:"type:varchar(30);not null;index"`
	RejectReason *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
