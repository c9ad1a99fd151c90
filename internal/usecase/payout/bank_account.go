package payout

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	payoutdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/payout"
	"github.com/vendaro/vendaro-settlement-service/internal/vault"
)

// ConnectBankAccount validates card credentials, encrypts them through the
// vault and stores one active account per user. Vendors additionally get a
// balance row created and linked so the payout path is immediately usable.
func (uc *DefaultPayoutUsecase) ConnectBankAccount(input *payoutdto.ConnectBankAccountInput) (*payoutdto.BankAccountOutput, error) {
	if input.ActorRole != domain.RoleCustomer && input.ActorRole != domain.RoleVendor {
		return nil, fmt.Errorf("%w: only customers and vendors connect bank accounts", domain.ErrUnauthorized)
	}
	if input.BankName == "" {
		return nil, fmt.Errorf("%w: bank name is required", domain.ErrValidation)
	}

	now := uc.now()
	if err := vault.ValidateCardNumber(input.CardNumber, uc.Production); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := vault.ValidateExpiryDate(input.ExpiryMonth, input.ExpiryYear, now); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := vault.ValidateCVV(input.CVV); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	encryptedCard, err := uc.Vault.Encrypt(input.CardNumber)
	if err != nil {
		return nil, fmt.Errorf("encrypt card number: %w", err)
	}
	encryptedExpiry, err := uc.Vault.Encrypt(vault.MaskExpiry(input.ExpiryMonth, input.ExpiryYear))
	if err != nil {
		return nil, fmt.Errorf("encrypt expiry: %w", err)
	}
	encryptedCVV, err := uc.Vault.Encrypt(input.CVV)
	if err != nil {
		return nil, fmt.Errorf("encrypt cvv: %w", err)
	}

	account := &domain.BankAccount{
		ID:       uuid.New().String(),
		UserID:   input.ActorID,
		RoleType: input.ActorRole,

		EncryptedCardNumber: encryptedCard,
		EncryptedExpiry:     encryptedExpiry,
		EncryptedCVV:        encryptedCVV,
		BankName:            input.BankName,
		AccountHolder:       input.AccountHolder,

		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.BankAccountRepo.SaveBankAccount(account); err != nil {
		return nil, err
	}

	if input.ActorRole == domain.RoleVendor {
		if _, err := uc.VendorBalanceRepo.GetOrCreate(input.ActorID); err != nil {
			return nil, err
		}
		if err := uc.VendorBalanceRepo.LinkBankAccount(input.ActorID, account.ID); err != nil {
			return nil, err
		}
	}

	return &payoutdto.BankAccountOutput{
		AccountID:  account.ID,
		BankName:   account.BankName,
		MaskedCard: vault.MaskCardNumber(input.CardNumber),
		IsActive:   account.IsActive,
	}, nil
}
