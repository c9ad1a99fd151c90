package repository

import (
	"errors"
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultBankAccountRepository struct {
	DB *gorm.DB
}

func NewDefaultBankAccountRepository(db *gorm.DB) *DefaultBankAccountRepository {
	return &DefaultBankAccountRepository{DB: db}
}

func (r *DefaultBankAccountRepository) GetByUserID(userID string) (*domain.BankAccount, error) {
	var account models.BankAccountModel
	if err := r.DB.First(&account, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bank account for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainBankAccount(&account), nil
}

// SaveBankAccount upserts on user_id: one account per user, replaced on
// reconnection.
func (r *DefaultBankAccountRepository) SaveBankAccount(account *domain.BankAccount) error {
	accountModel := mappers.ToGORMBankAccount(account)
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"encrypted_card_number", "encrypted_expiry", "encrypted_cvv",
			"bank_name", "account_holder", "is_active", "updated_at",
		}),
	}).Create(accountModel).Error
}
