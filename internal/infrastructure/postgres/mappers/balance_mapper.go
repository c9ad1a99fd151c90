package mappers

import (
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainVendorBalance(model *models.VendorBalanceModel) *domain.VendorBalance {
	return &domain.VendorBalance{
		VendorID:            model.VendorID,
		BankAccountID:       model.BankAccountID,
		TotalEarnings:       model.TotalEarnings,
		AvailableBalance:    model.AvailableBalance,
		PendingBalance:      model.PendingBalance,
		TotalPayouts:        model.TotalPayouts,
		LastPayout:          model.LastPayout,
		LastPayoutAmount:    model.LastPayoutAmount,
		MinimumPayoutAmount: model.MinimumPayoutAmount,
		CommissionRate:      model.CommissionRate,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToDomainCustomerBalance(model *models.CustomerBalanceModel) *domain.CustomerBalance {
	return &domain.CustomerBalance{
		CustomerID:      model.CustomerID,
		SpendingBalance: model.SpendingBalance,
		TotalSpent:      model.TotalSpent,
		LastTransaction: model.LastTransaction,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToDomainPayout(model *models.PayoutModel) *domain.Payout {
	return &domain.Payout{
		ID:             model.ID,
		VendorID:       model.VendorID,
		Amount:         model.Amount,
		Description:    model.Description,
		ReferenceCode:  model.ReferenceCode,
		RailTransferID: model.RailTransferID,
		Status:         domain.PayoutStatus(model.Status),
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMPayout(payout *domain.Payout) *models.PayoutModel {
	return &models.PayoutModel{
		ID:             payout.ID,
		VendorID:       payout.VendorID,
		Amount:         payout.Amount,
		Description:    payout.Description,
		ReferenceCode:  payout.ReferenceCode,
		RailTransferID: payout.RailTransferID,
		Status:         string(payout.Status),
		CreatedAt:      payout.CreatedAt,
	}
}

func ToDomainBankAccount(model *models.BankAccountModel) *domain.BankAccount {
	return &domain.BankAccount{
		ID:                  model.ID,
		UserID:              model.UserID,
		RoleType:            domain.Role(model.RoleType),
		EncryptedCardNumber: model.EncryptedCardNumber,
		EncryptedExpiry:     model.EncryptedExpiry,
		EncryptedCVV:        model.EncryptedCVV,
		BankName:            model.BankName,
		AccountHolder:       model.AccountHolder,
		IsActive:            model.IsActive,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMBankAccount(account *domain.BankAccount) *models.BankAccountModel {
	return &models.BankAccountModel{
		ID:                  account.ID,
		UserID:              account.UserID,
		RoleType:            string(account.RoleType),
		EncryptedCardNumber: account.EncryptedCardNumber,
		EncryptedExpiry:     account.EncryptedExpiry,
		EncryptedCVV:        account.EncryptedCVV,
		BankName:            account.BankName,
		AccountHolder:       account.AccountHolder,
		IsActive:            account.IsActive,
		CreatedAt:           account.CreatedAt,
		UpdatedAt:           account.UpdatedAt,
	}
}
