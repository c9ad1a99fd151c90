package payout

import (
	"log/slog"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/metrics"
	payoutdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/payout"
	"github.com/vendaro/vendaro-settlement-service/internal/vault"
)

type PayoutUsecase interface {
	RequestPayout(input *payoutdto.RequestPayoutInput) (*payoutdto.PayoutOutput, error)
	AddEarnings(input *payoutdto.AddEarningsInput) (*domain.VendorBalance, error)
	ConnectBankAccount(input *payoutdto.ConnectBankAccountInput) (*payoutdto.BankAccountOutput, error)

	GetVendorBalance(actorID string, actorRole domain.Role, vendorID string) (*domain.VendorBalance, error)
	ListPayouts(actorID string, actorRole domain.Role, vendorID string, page, limit int) ([]*domain.Payout, int64, error)
}

type DefaultPayoutUsecase struct {
	VendorBalanceRepo domain.VendorBalanceRepository
	PayoutRepo        domain.PayoutRepository
	BankAccountRepo   domain.BankAccountRepository
	Rail              domain.PaymentRail
	Vault             *vault.Vault
	Publisher         publisher.SettlementPublisher
	Metrics           *metrics.SettlementMetrics
	// Production disables the test-card allow list in card validation.
	Production bool
	NowFn      func() time.Time
}

func NewDefaultPayoutUsecase(
	vendorBalanceRepo domain.VendorBalanceRepository,
	payoutRepo domain.PayoutRepository,
	bankAccountRepo domain.BankAccountRepository,
	rail domain.PaymentRail,
	v *vault.Vault,
	pub publisher.SettlementPublisher,
	m *metrics.SettlementMetrics,
	production bool,
) *DefaultPayoutUsecase {
	return &DefaultPayoutUsecase{
		VendorBalanceRepo: vendorBalanceRepo,
		PayoutRepo:        payoutRepo,
		BankAccountRepo:   bankAccountRepo,
		Rail:              rail,
		Vault:             v,
		Publisher:         pub,
		Metrics:           m,
		Production:        production,
		NowFn:             time.Now,
	}
}

func (uc *DefaultPayoutUsecase) now() time.Time {
	if uc.NowFn != nil {
		return uc.NowFn()
	}
	return time.Now()
}

func (uc *DefaultPayoutUsecase) publish(event publisher.SettlementEvent) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishSettlement(event); err != nil {
		slog.Warn("failed to publish settlement event",
			"type", event.Type, "vendor_id", event.VendorID, "error", err)
	}
}
