package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailEvent is the audit row written after every dispatch attempt. It is
// inserted through the raw pgx pool, never read on a request path.
type EmailEvent struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Kind      string    `json:"kind" gorm:"type:varchar(40);not null;index"`
	Recipient string    `json:"recipient" gorm:"type:varchar(255);not null"`
	Subject   string    `json:"subject" gorm:"type:varchar(255)"`
	Sent      bool      `json:"sent" gorm:"not null"`
	Error     string    `json:"error" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (EmailEvent) TableName() string {
	return "email_events"
}
