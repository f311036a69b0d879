package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint is a support ticket filed by a user. TicketNo is the human-facing
// handle used on the resolve endpoint.
type Complaint struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	OrderNo     string    `json:"order_no" gorm:"type:varchar(16)"`
	TicketNo    string    `json:"ticket_no" gorm:"type:varchar(16);uniqueIndex;not null"`
	Resolved    bool      `json:"resolved" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (cp *Complaint) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Complaint) TableName() string {
	return "complaints"
}

type ResolveComplaintRequest struct {
	Message string `json:"message" binding:"required"`
}
