package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aphia-Commerce/aphia-api/models"
	"gorm.io/gorm"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByTicket(ctx context.Context, ticketNo string) (models.Complaint, error)

	// MarkResolved flips the resolved flag; it reports whether a row matched.
	MarkResolved(ctx context.Context, ticketNo string) (bool, error)

	// DeleteResolved bulk-deletes resolved complaints and returns the count.
	DeleteResolved(ctx context.Context) (int64, error)
}

type complaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	if err := r.db.WithContext(ctx).Create(complaint).Error; err != nil {
		return fmt.Errorf("create complaint: %w", err)
	}
	return nil
}

func (r *complaintRepository) GetByTicket(ctx context.Context, ticketNo string) (models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).First(&complaint, "ticket_no = ?", ticketNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return complaint, ErrNotFound
		}
		return complaint, fmt.Errorf("get complaint: %w", err)
	}
	return complaint, nil
}

func (r *complaintRepository) MarkResolved(ctx context.Context, ticketNo string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("ticket_no = ?", ticketNo).
		Update("resolved", true)
	if res.Error != nil {
		return false, fmt.Errorf("mark complaint resolved: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *complaintRepository) DeleteResolved(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("resolved = ?", true).
		Delete(&models.Complaint{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete resolved complaints: %w", res.Error)
	}
	return res.RowsAffected, nil
}
