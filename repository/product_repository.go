package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aphia-Commerce/aphia-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product, ErrNotFound
		}
		return product, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (r *productRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products by owner: %w", err)
	}
	return products, nil
}
