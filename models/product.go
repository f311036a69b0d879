package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is read-only from the order core's perspective: orders reference
// products, and the vendor view joins line items against product ownership.
type Product struct {
	ID         uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string                     `json:"name" gorm:"not null;index"`
	Price      float64                    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	UserID     uuid.UUID                  `json:"user_id" gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID                  `json:"category_id" gorm:"type:uuid;not null;index"`
	Images     datatypes.JSONSlice[string] `json:"images" gorm:"not null;default:'[]'"`
	CreatedAt  time.Time                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
