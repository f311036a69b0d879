// Package repository gives every entity a small store interface so the
// controllers depend on find/insert/update/delete semantics rather than on a
// concrete database client.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an operation is incompatible with the
	// entity's current state, e.g. deleting a completed order.
	ErrConflict = errors.New("conflicting record state")
)

// Repositories bundles every entity store for wiring into controllers.
type Repositories struct {
	Orders     OrderRepository
	Payments   PaymentRepository
	Products   ProductRepository
	Users      UserRepository
	Complaints ComplaintRepository
	Categories CategoryRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Orders:     NewOrderRepository(db),
		Payments:   NewPaymentRepository(db),
		Products:   NewProductRepository(db),
		Users:      NewUserRepository(db),
		Complaints: NewComplaintRepository(db),
		Categories: NewCategoryRepository(db),
	}
}
