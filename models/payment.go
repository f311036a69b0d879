package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment records a payment attempt against an order. Payments are removed
// en masse, before the order row, when a non-completed order is deleted.
type Payment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	TxRef     string    `json:"tx_ref" gorm:"type:varchar(64)"`
	Amount    float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	Currency  string    `json:"currency" gorm:"type:varchar(10)"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'initiated'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Payment) TableName() string {
	return "payments"
}
