package entity

import "github.com/google/uuid"

// Category groups products under a unique, merchant-managed name.
type Category struct {
	ID   uuid.UUID
	Name string
}
