package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a customer order. OrderRef is the human-facing reference,
// distinct from the primary key, and never changes once assigned.
type Order struct {
	ID                   uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	StreetAddress        string          `json:"street_address" gorm:"not null"`
	City                 string          `json:"city" gorm:"not null"`
	State                string          `json:"state" gorm:"not null"`
	PostalCode           string          `json:"postal_code"`
	PhoneNumber          string          `json:"phone_number" gorm:"not null"`
	AlternatePhoneNumber string          `json:"alternate_phone_number"`
	Amount               float64         `json:"amount" gorm:"type:numeric(12,2);not null;check:amount >= 0"`
	Currency             string          `json:"currency" gorm:"type:varchar(10)"`
	OrderDate            time.Time       `json:"order_date"`
	DeliveryDate         *time.Time      `json:"delivery_date,omitempty"`
	TxRef                string          `json:"tx_ref"`
	OrderRef             string          `json:"order_ref" gorm:"type:varchar(16);uniqueIndex;not null"`
	Completed            bool            `json:"completed" gorm:"not null;default:false;index"`
	Products             []OrderLineItem `json:"products" gorm:"foreignKey:OrderID"`
	CreatedAt            time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderLineItem is a (product, quantity, price) tuple inside an order.
type OrderLineItem struct {
	ID        uuid.UUID `json:"-" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	Price     float64   `json:"price" gorm:"type:numeric(12,2);not null"`
}

func (i *OrderLineItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderLineItem) TableName() string {
	return "order_items"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CreateOrderRequest struct {
	StreetAddress        string          `json:"street_address"`
	City                 string          `json:"city"`
	State                string          `json:"state"`
	PostalCode           string          `json:"postal_code"`
	PhoneNumber          string          `json:"phone_number"`
	AlternatePhoneNumber string          `json:"alternate_phone_number"`
	Products             []LineItemInput `json:"products"`
	Amount               float64         `json:"amount"`
	Currency             string          `json:"currency"`
	// Dates arrive as strings so both RFC3339 and plain dates parse, the
	// same two formats the deliver endpoint accepts.
	OrderDate    string `json:"order_date,omitempty"`
	DeliveryDate string `json:"delivery_date,omitempty"`
	TxRef        string `json:"tx_ref"`
}

type LineItemInput struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

type MarkDeliveredRequest struct {
	DeliveryDate time.Time `json:"delivery_date"`
	Completed    bool      `json:"completed"`
}

// ═══════════════════════════════════════════════════════════
// Derived Views
// ═══════════════════════════════════════════════════════════

// VendorOrderView is the per-order slice of a vendor's fulfillment view.
// It only exists for orders carrying at least one of the vendor's products.
type VendorOrderView struct {
	OrderID   uuid.UUID            `json:"order_id"`
	Completed bool                 `json:"completed"`
	Date      time.Time            `json:"date"`
	Products  []VendorOrderProduct `json:"products"`
}

type VendorOrderProduct struct {
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CategoryID  uuid.UUID `json:"category_id"`
	Image       string    `json:"image"`
}
