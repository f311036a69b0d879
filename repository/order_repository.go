package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ListByCompleted(ctx context.Context, completed bool) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)

	// MarkDelivered sets the completion flag and delivery date in a single
	// conditional update. It reports whether any row matched.
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveryDate time.Time) (bool, error)

	// DeleteWithPayments removes the order's payments and then the order
	// itself in one transaction. The order delete is conditional on
	// completed = false; ErrConflict is returned (and the payment deletes
	// rolled back) when the order completed concurrently.
	DeleteWithPayments(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, ErrNotFound
		}
		return order, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("user_id = ?", userID).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListByCompleted(ctx context.Context, completed bool) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("completed = ?", completed).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Products").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) MarkDelivered(ctx context.Context, id uuid.UUID, deliveryDate time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"completed":     true,
			"delivery_date": deliveryDate,
		})
	if res.Error != nil {
		return false, fmt.Errorf("mark order delivered: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *orderRepository) DeleteWithPayments(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Payments go first so a partial failure can never leave an order
		// pointing at deleted payment state.
		if err := tx.Where("order_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return fmt.Errorf("delete payments: %w", err)
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLineItem{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}

		// Conditional delete closes the race with a concurrent
		// mark-delivered: a completed order must never be removed.
		res := tx.Where("id = ? AND completed = ?", id, false).Delete(&models.Order{})
		if res.Error != nil {
			return fmt.Errorf("delete order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
