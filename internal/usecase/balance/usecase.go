package balance

import (
	"fmt"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
)

// BalanceUsecase exposes the simulated customer wallet: reads, manual
// deductions and top-ups. Order charges and refunds go through the order
// flow and the settlement coordinator instead.
type BalanceUsecase interface {
	GetCustomerBalance(actorID string, actorRole domain.Role, customerID string) (*domain.CustomerBalance, error)
	Deduct(actorID string, actorRole domain.Role, customerID string, amount float64) (*domain.CustomerBalance, error)
	Add(actorID string, actorRole domain.Role, customerID string, amount float64) (*domain.CustomerBalance, error)
}

type DefaultBalanceUsecase struct {
	CustomerBalanceRepo domain.CustomerBalanceRepository
	NowFn               func() time.Time
}

func NewDefaultBalanceUsecase(repo domain.CustomerBalanceRepository) *DefaultBalanceUsecase {
	return &DefaultBalanceUsecase{
		CustomerBalanceRepo: repo,
		NowFn:               time.Now,
	}
}

func (uc *DefaultBalanceUsecase) now() time.Time {
	if uc.NowFn != nil {
		return uc.NowFn()
	}
	return time.Now()
}

func (uc *DefaultBalanceUsecase) GetCustomerBalance(actorID string, actorRole domain.Role, customerID string) (*domain.CustomerBalance, error) {
	if err := authorizeWalletAccess(actorID, actorRole, customerID); err != nil {
		return nil, err
	}
	return uc.CustomerBalanceRepo.GetOrCreate(customerID)
}

func (uc *DefaultBalanceUsecase) Deduct(actorID string, actorRole domain.Role, customerID string, amount float64) (*domain.CustomerBalance, error) {
	if err := authorizeWalletAccess(actorID, actorRole, customerID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: deduction amount must be positive", domain.ErrValidation)
	}
	if _, err := uc.CustomerBalanceRepo.GetOrCreate(customerID); err != nil {
		return nil, err
	}
	if err := uc.CustomerBalanceRepo.Deduct(customerID, domain.RoundMoney(amount), uc.now()); err != nil {
		return nil, err
	}
	return uc.CustomerBalanceRepo.GetOrCreate(customerID)
}

func (uc *DefaultBalanceUsecase) Add(actorID string, actorRole domain.Role, customerID string, amount float64) (*domain.CustomerBalance, error) {
	if err := authorizeWalletAccess(actorID, actorRole, customerID); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: top-up amount must be positive", domain.ErrValidation)
	}
	if _, err := uc.CustomerBalanceRepo.GetOrCreate(customerID); err != nil {
		return nil, err
	}
	if err := uc.CustomerBalanceRepo.Add(customerID, domain.RoundMoney(amount), uc.now()); err != nil {
		return nil, err
	}
	return uc.CustomerBalanceRepo.GetOrCreate(customerID)
}

func authorizeWalletAccess(actorID string, actorRole domain.Role, customerID string) error {
	if actorRole == domain.RoleAdmin {
		return nil
	}
	if actorRole == domain.RoleCustomer && actorID == customerID {
		return nil
	}
	return fmt.Errorf("%w: wallet belongs to another customer", domain.ErrUnauthorized)
}
