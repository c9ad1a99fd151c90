package payout

import (
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	payoutdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/payout"
)

// AddEarnings is the demo credit path: it drops funds straight into the
// vendor's pending pool without an order behind them. Kept for sandbox and
// load-test tooling.
func (uc *DefaultPayoutUsecase) AddEarnings(input *payoutdto.AddEarningsInput) (*domain.VendorBalance, error) {
	if err := authorizeVendorAction(input.ActorID, input.ActorRole, input.VendorID); err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: earnings amount must be positive", domain.ErrValidation)
	}
	amount := domain.RoundMoney(input.Amount)

	if _, err := uc.VendorBalanceRepo.GetOrCreate(input.VendorID); err != nil {
		return nil, err
	}
	if err := uc.VendorBalanceRepo.CreditPending(input.VendorID, amount, uc.now()); err != nil {
		return nil, err
	}
	return uc.VendorBalanceRepo.GetByVendorID(input.VendorID)
}

func (uc *DefaultPayoutUsecase) GetVendorBalance(actorID string, actorRole domain.Role, vendorID string) (*domain.VendorBalance, error) {
	if err := authorizeVendorAction(actorID, actorRole, vendorID); err != nil {
		return nil, err
	}
	return uc.VendorBalanceRepo.GetByVendorID(vendorID)
}

func (uc *DefaultPayoutUsecase) ListPayouts(actorID string, actorRole domain.Role, vendorID string, page, limit int) ([]*domain.Payout, int64, error) {
	if err := authorizeVendorAction(actorID, actorRole, vendorID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.PayoutRepo.GetPayoutsByVendorID(vendorID, page, limit)
}
