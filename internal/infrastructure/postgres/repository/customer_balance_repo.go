package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCustomerBalanceRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerBalanceRepository(db *gorm.DB) *DefaultCustomerBalanceRepository {
	return &DefaultCustomerBalanceRepository{DB: db}
}

// GetOrCreate seeds the simulated wallet on first access.
func (r *DefaultCustomerBalanceRepository) GetOrCreate(customerID string) (*domain.CustomerBalance, error) {
	now := time.Now()
	model := models.CustomerBalanceModel{
		CustomerID:      customerID,
		SpendingBalance: domain.CustomerSeedBalance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error; err != nil {
		return nil, err
	}

	var balance models.CustomerBalanceModel
	if err := r.DB.First(&balance, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer balance %s: %w", customerID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainCustomerBalance(&balance), nil
}

func (r *DefaultCustomerBalanceRepository) Deduct(customerID string, amount float64, now time.Time) error {
	res := r.DB.Model(&models.CustomerBalanceModel{}).
		Where("customer_id = ? AND spending_balance >= ?", customerID, amount).
		Updates(map[string]interface{}{
			"spending_balance": gorm.Expr("round((spending_balance - ?)::numeric, 2)", amount),
			"total_spent":      gorm.Expr("round((total_spent + ?)::numeric, 2)", amount),
			"last_transaction": now,
			"updated_at":       now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deduct %.2f from customer %s: %w", amount, customerID, domain.ErrInsufficientBalance)
	}
	return nil
}

func (r *DefaultCustomerBalanceRepository) Add(customerID string, amount float64, now time.Time) error {
	res := r.DB.Model(&models.CustomerBalanceModel{}).
		Where("customer_id = ?", customerID).
		Updates(map[string]interface{}{
			"spending_balance": gorm.Expr("round((spending_balance + ?)::numeric, 2)", amount),
			"last_transaction": now,
			"updated_at":       now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer balance %s: %w", customerID, domain.ErrNotFound)
	}
	return nil
}
