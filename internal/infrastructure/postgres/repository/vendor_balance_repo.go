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

type DefaultVendorBalanceRepository struct {
	DB *gorm.DB
}

func NewDefaultVendorBalanceRepository(db *gorm.DB) *DefaultVendorBalanceRepository {
	return &DefaultVendorBalanceRepository{DB: db}
}

func (r *DefaultVendorBalanceRepository) GetByVendorID(vendorID string) (*domain.VendorBalance, error) {
	var balance models.VendorBalanceModel
	if err := r.DB.First(&balance, "vendor_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vendor balance %s: %w", vendorID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainVendorBalance(&balance), nil
}

// GetOrCreate lazily creates the vendor's ledger row. ON CONFLICT DO NOTHING
// keeps concurrent first-credit and first-bank-connection calls from racing.
func (r *DefaultVendorBalanceRepository) GetOrCreate(vendorID string) (*domain.VendorBalance, error) {
	now := time.Now()
	model := models.VendorBalanceModel{
		VendorID:            vendorID,
		MinimumPayoutAmount: domain.DefaultMinimumPayout,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error; err != nil {
		return nil, err
	}
	return r.GetByVendorID(vendorID)
}

func (r *DefaultVendorBalanceRepository) LinkBankAccount(vendorID, bankAccountID string) error {
	if _, err := r.GetOrCreate(vendorID); err != nil {
		return err
	}
	return r.DB.Model(&models.VendorBalanceModel{}).
		Where("vendor_id = ?", vendorID).
		Update("bank_account_id", bankAccountID).Error
}

func (r *DefaultVendorBalanceRepository) CreditPending(vendorID string, amount float64, now time.Time) error {
	if _, err := r.GetOrCreate(vendorID); err != nil {
		return err
	}
	return r.DB.Model(&models.VendorBalanceModel{}).
		Where("vendor_id = ?", vendorID).
		Updates(map[string]interface{}{
			"pending_balance": gorm.Expr("round((pending_balance + ?)::numeric, 2)", amount),
			"updated_at":      now,
		}).Error
}

// DebitAvailable debits the available pool and bumps payout totals in a
// single conditional update. The balance guard lives in the WHERE clause so
// two concurrent payouts cannot both succeed against one balance.
func (r *DefaultVendorBalanceRepository) DebitAvailable(vendorID string, amount float64, now time.Time) error {
	res := r.DB.Model(&models.VendorBalanceModel{}).
		Where("vendor_id = ? AND available_balance >= ?", vendorID, amount).
		Updates(map[string]interface{}{
			"available_balance":  gorm.Expr("round((available_balance - ?)::numeric, 2)", amount),
			"total_payouts":      gorm.Expr("round((total_payouts + ?)::numeric, 2)", amount),
			"last_payout":        now,
			"last_payout_amount": amount,
			"updated_at":         now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// either the row is missing or the balance is short
		if _, err := r.GetByVendorID(vendorID); err != nil {
			return err
		}
		return fmt.Errorf("debit %.2f from vendor %s: %w", amount, vendorID, domain.ErrInsufficientBalance)
	}
	return nil
}
