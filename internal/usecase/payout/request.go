package payout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	payoutdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/payout"
)

// RequestPayout debits the vendor's available balance and asks the payment
// rail for a transfer. The debit happens before the rail call; if the rail
// fails, the payout is kept with status "simulated" and the debit stands.
// That asymmetry is deliberate for the sandbox ledger and is logged loudly.
func (uc *DefaultPayoutUsecase) RequestPayout(input *payoutdto.RequestPayoutInput) (*payoutdto.PayoutOutput, error) {
	if err := authorizeVendorAction(input.ActorID, input.ActorRole, input.VendorID); err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: payout amount must be positive", domain.ErrValidation)
	}
	amount := domain.RoundMoney(input.Amount)

	balance, err := uc.VendorBalanceRepo.GetByVendorID(input.VendorID)
	if err != nil {
		return nil, err
	}
	if amount < balance.MinimumPayoutAmount {
		return nil, fmt.Errorf("%w: amount %.2f is below the minimum payout of %.2f",
			domain.ErrValidation, amount, balance.MinimumPayoutAmount)
	}

	account, err := uc.BankAccountRepo.GetByUserID(input.VendorID)
	if err != nil {
		return nil, fmt.Errorf("payout requires a connected bank account: %w", err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: bank account is inactive", domain.ErrValidation)
	}

	now := uc.now()
	if err := uc.VendorBalanceRepo.DebitAvailable(input.VendorID, amount, now); err != nil {
		return nil, err
	}

	refGen, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	payout := &domain.Payout{
		ID:            uuid.New().String(),
		VendorID:      input.VendorID,
		Amount:        amount,
		Description:   input.Description,
		ReferenceCode: refGen(),
		Status:        domain.PayoutCompleted,
		CreatedAt:     now,
	}

	transferID, _, railErr := uc.Rail.CreateTransfer(context.Background(), account, amount, input.Description)
	if railErr != nil {
		// explicit decision: the debit is not rolled back
		payout.Status = domain.PayoutSimulated
		slog.Warn("payment rail rejected transfer, keeping payout as simulated",
			"vendor_id", input.VendorID, "amount", amount, "error", railErr)
		if uc.Metrics != nil {
			uc.Metrics.PayoutRailFailuresTotal.Inc()
		}
		uc.publish(publisher.SettlementEvent{
			Type:       publisher.EventPayoutRailFail,
			VendorID:   input.VendorID,
			PayoutID:   payout.ID,
			Amount:     amount,
			Reason:     railErr.Error(),
			OccurredAt: now.Unix(),
		})
	} else {
		payout.RailTransferID = transferID
	}

	if err := uc.PayoutRepo.CreatePayout(payout); err != nil {
		return nil, fmt.Errorf("record payout: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.PayoutsRequestedTotal.WithLabelValues(string(payout.Status)).Inc()
		uc.Metrics.PayoutsAmountTotal.WithLabelValues(string(payout.Status)).Add(amount)
	}
	uc.publish(publisher.SettlementEvent{
		Type:       publisher.EventPayoutSettled,
		VendorID:   input.VendorID,
		PayoutID:   payout.ID,
		Amount:     amount,
		Status:     string(payout.Status),
		OccurredAt: now.Unix(),
	})

	updated, err := uc.VendorBalanceRepo.GetByVendorID(input.VendorID)
	if err != nil {
		return nil, err
	}
	return &payoutdto.PayoutOutput{Payout: *payout, Balance: *updated}, nil
}

func authorizeVendorAction(actorID string, actorRole domain.Role, vendorID string) error {
	if actorRole == domain.RoleAdmin {
		return nil
	}
	if actorRole == domain.RoleVendor && actorID == vendorID {
		return nil
	}
	return fmt.Errorf("%w: balance belongs to another vendor", domain.ErrUnauthorized)
}
