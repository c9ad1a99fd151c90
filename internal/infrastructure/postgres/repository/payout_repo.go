package repository

import (
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

func (r *DefaultPayoutRepository) CreatePayout(payout *domain.Payout) error {
	payoutModel := mappers.ToGORMPayout(payout)
	return r.DB.Create(payoutModel).Error
}

func (r *DefaultPayoutRepository) GetPayoutsByVendorID(vendorID string, page, limit int) ([]*domain.Payout, int64, error) {
	var payoutModels []models.PayoutModel
	var total int64

	baseQuery := r.DB.Model(&models.PayoutModel{}).Where("vendor_id = ?", vendorID)
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&payoutModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find payouts: %w", err)
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, payoutModel := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModel)
	}

	return payouts, total, nil
}
