package repository

import (
	"fmt"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSettlementRepository owns the multi-record escrow mutations. Every
// method wraps the order guard and the per-vendor balance fan-out in one
// transaction; a failure anywhere rolls the whole unit back, so no subset of
// vendors can end up credited.
type DefaultSettlementRepository struct {
	DB *gorm.DB
}

func NewDefaultSettlementRepository(db *gorm.DB) *DefaultSettlementRepository {
	return &DefaultSettlementRepository{DB: db}
}

// CreditPending applies the per-vendor pending credits for an order exactly
// once. The pending_credited flag is flipped by the same guarded update that
// admits the fan-out, so repeated calls (or a re-delivered creation event)
// are no-ops.
func (r *DefaultSettlementRepository) CreditPending(orderID string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND pending_credited = ? AND escrow_status = ?", orderID, false, domain.EscrowHeld).
			Update("pending_credited", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := orderExists(tx, orderID); err != nil {
				return err
			}
			// already credited: idempotent no-op
			return nil
		}

		order, err := loadOrder(tx, orderID)
		if err != nil {
			return err
		}

		for vendorID, share := range order.VendorShares() {
			if err := ensureVendorBalance(tx, vendorID); err != nil {
				return err
			}
			err := tx.Model(&models.VendorBalanceModel{}).
				Where("vendor_id = ?", vendorID).
				Updates(map[string]interface{}{
					"pending_balance": gorm.Expr("round((pending_balance + ?)::numeric, 2)", share),
					"updated_at":      time.Now(),
				}).Error
			if err != nil {
				return fmt.Errorf("credit pending for vendor %s: %w", vendorID, err)
			}
		}
		return nil
	})
}

// ReleaseEscrow moves each vendor share pending -> available, credits total
// earnings and flips the order escrow status. The held guard makes a second
// release a rejected no-op instead of a double credit.
func (r *DefaultSettlementRepository) ReleaseEscrow(orderID string, now time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND escrow_status = ?", orderID, domain.EscrowHeld).
			Updates(map[string]interface{}{
				"escrow_status":       domain.EscrowReleased,
				"escrow_release_date": now,
				"updated_at":          now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := orderExists(tx, orderID); err != nil {
				return err
			}
			return fmt.Errorf("order %s: %w", orderID, domain.ErrEscrowNotHeld)
		}

		order, err := loadOrder(tx, orderID)
		if err != nil {
			return err
		}

		for vendorID, share := range order.VendorShares() {
			if err := ensureVendorBalance(tx, vendorID); err != nil {
				return err
			}
			err := tx.Model(&models.VendorBalanceModel{}).
				Where("vendor_id = ?", vendorID).
				Updates(map[string]interface{}{
					"pending_balance":   gorm.Expr("greatest(round((pending_balance - ?)::numeric, 2), 0)", share),
					"available_balance": gorm.Expr("round((available_balance + ?)::numeric, 2)", share),
					"total_earnings":    gorm.Expr("round((total_earnings + ?)::numeric, 2)", share),
					"updated_at":        now,
				}).Error
			if err != nil {
				return fmt.Errorf("release share for vendor %s: %w", vendorID, err)
			}
		}
		return nil
	})
}

// RefundEscrow is the inverse of CreditPending: vendor pending balances are
// reverted with no earnings or available change, and the customer wallet is
// re-credited with the order total.
func (r *DefaultSettlementRepository) RefundEscrow(orderID string, now time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrderModel{}).
			Where("id = ? AND escrow_status = ?", orderID, domain.EscrowHeld).
			Updates(map[string]interface{}{
				"escrow_status":  domain.EscrowRefunded,
				"payment_status": domain.PaymentRefunded,
				"updated_at":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := orderExists(tx, orderID); err != nil {
				return err
			}
			return fmt.Errorf("order %s: %w", orderID, domain.ErrEscrowNotHeld)
		}

		order, err := loadOrder(tx, orderID)
		if err != nil {
			return err
		}

		for vendorID, share := range order.VendorShares() {
			err := tx.Model(&models.VendorBalanceModel{}).
				Where("vendor_id = ?", vendorID).
				Updates(map[string]interface{}{
					"pending_balance": gorm.Expr("greatest(round((pending_balance - ?)::numeric, 2), 0)", share),
					"updated_at":      now,
				}).Error
			if err != nil {
				return fmt.Errorf("revert pending for vendor %s: %w", vendorID, err)
			}
		}

		if err := ensureCustomerBalance(tx, order.CustomerID); err != nil {
			return err
		}
		err = tx.Model(&models.CustomerBalanceModel{}).
			Where("customer_id = ?", order.CustomerID).
			Updates(map[string]interface{}{
				"spending_balance": gorm.Expr("round((spending_balance + ?)::numeric, 2)", order.Total),
				"last_transaction": now,
				"updated_at":       now,
			}).Error
		if err != nil {
			return fmt.Errorf("refund customer %s: %w", order.CustomerID, err)
		}
		return nil
	})
}

func loadOrder(tx *gorm.DB, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := tx.Preload("Items").First(&orderModel, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func orderExists(tx *gorm.DB, orderID string) error {
	var count int64
	if err := tx.Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

func ensureVendorBalance(tx *gorm.DB, vendorID string) error {
	now := time.Now()
	model := models.VendorBalanceModel{
		VendorID:            vendorID,
		MinimumPayoutAmount: domain.DefaultMinimumPayout,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error
}

func ensureCustomerBalance(tx *gorm.DB, customerID string) error {
	now := time.Now()
	model := models.CustomerBalanceModel{
		CustomerID:      customerID,
		SpendingBalance: domain.CustomerSeedBalance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error
}
