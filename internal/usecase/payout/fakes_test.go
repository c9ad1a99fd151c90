package payout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
)

type fakeVendorBalanceRepo struct {
	mu       sync.Mutex
	balances map[string]*domain.VendorBalance
}

func newFakeVendorBalanceRepo() *fakeVendorBalanceRepo {
	return &fakeVendorBalanceRepo{balances: make(map[string]*domain.VendorBalance)}
}

func (r *fakeVendorBalanceRepo) GetByVendorID(vendorID string) (*domain.VendorBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[vendorID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *balance
	return &copied, nil
}

func (r *fakeVendorBalanceRepo) GetOrCreate(vendorID string) (*domain.VendorBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if balance, ok := r.balances[vendorID]; ok {
		copied := *balance
		return &copied, nil
	}
	balance := &domain.VendorBalance{VendorID: vendorID, MinimumPayoutAmount: domain.DefaultMinimumPayout}
	r.balances[vendorID] = balance
	copied := *balance
	return &copied, nil
}

func (r *fakeVendorBalanceRepo) LinkBankAccount(vendorID, bankAccountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[vendorID]
	if !ok {
		return domain.ErrNotFound
	}
	balance.BankAccountID = bankAccountID
	return nil
}

func (r *fakeVendorBalanceRepo) CreditPending(vendorID string, amount float64, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[vendorID]
	if !ok {
		return domain.ErrNotFound
	}
	balance.PendingBalance = domain.RoundMoney(balance.PendingBalance + amount)
	return nil
}

func (r *fakeVendorBalanceRepo) DebitAvailable(vendorID string, amount float64, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	balance, ok := r.balances[vendorID]
	if !ok {
		return domain.ErrNotFound
	}
	if balance.AvailableBalance < amount {
		return domain.ErrInsufficientBalance
	}
	balance.AvailableBalance = domain.RoundMoney(balance.AvailableBalance - amount)
	balance.TotalPayouts = domain.RoundMoney(balance.TotalPayouts + amount)
	balance.LastPayout = &now
	balance.LastPayoutAmount = amount
	return nil
}

type fakePayoutRepo struct {
	mu      sync.Mutex
	payouts []*domain.Payout
}

func (r *fakePayoutRepo) CreatePayout(payout *domain.Payout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *payout
	r.payouts = append(r.payouts, &copied)
	return nil
}

func (r *fakePayoutRepo) GetPayoutsByVendorID(vendorID string, page, limit int) ([]*domain.Payout, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Payout
	for _, payout := range r.payouts {
		if payout.VendorID == vendorID {
			copied := *payout
			result = append(result, &copied)
		}
	}
	return result, int64(len(result)), nil
}

type fakeBankAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.BankAccount
}

func newFakeBankAccountRepo() *fakeBankAccountRepo {
	return &fakeBankAccountRepo{accounts: make(map[string]*domain.BankAccount)}
}

func (r *fakeBankAccountRepo) GetByUserID(userID string) (*domain.BankAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeBankAccountRepo) SaveBankAccount(account *domain.BankAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *account
	r.accounts[account.UserID] = &copied
	return nil
}

type fakeRail struct {
	mu        sync.Mutex
	failWith  error
	transfers int
}

func (f *fakeRail) CreateTransfer(ctx context.Context, account *domain.BankAccount, amount float64, description string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return "", "failed", f.failWith
	}
	f.transfers++
	return fmt.Sprintf("tr_%d", f.transfers), "completed", nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publisher.SettlementEvent
}

func (p *recordingPublisher) PublishSettlement(event publisher.SettlementEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
