package proof

import (
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	proofdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/proof"
)

// ReviewProof records the admin decision.
//
//   - approve: reupload is closed permanently and a pending/processing order
//     advances to shipped.
//   - reject: the vendor may reupload while the original window is still
//     open (rejection does not extend it); an order that already advanced
//     reverts to pending.
//   - requires_review: holds the proof for a later approve/reject; the order
//     is untouched.
func (uc *DefaultProofUsecase) ReviewProof(input *proofdto.ReviewProofInput) (*proofdto.ProofOutput, error) {
	if input.ActorRole != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins review delivery proofs", domain.ErrUnauthorized)
	}

	proof, err := uc.ProofRepo.GetProofByID(input.ProofID)
	if err != nil {
		return nil, err
	}
	if proof.VerificationStatus != domain.ProofPending && proof.VerificationStatus != domain.ProofRequiresReview {
		return nil, fmt.Errorf("%w: proof already decided as %s",
			domain.ErrStateConflict, proof.VerificationStatus)
	}

	now := uc.now()
	uploadedAt := proof.UploadedAt

	switch input.Decision {
	case proofdto.DecisionApprove:
		proof.VerificationStatus = domain.ProofApproved
		proof.CanReupload = false
	case proofdto.DecisionReject:
		proof.VerificationStatus = domain.ProofRejected
	case proofdto.DecisionRequiresReview:
		proof.VerificationStatus = domain.ProofRequiresReview
	default:
		return nil, fmt.Errorf("%w: unknown review decision %q", domain.ErrValidation, input.Decision)
	}
	proof.ReviewerID = input.ActorID
	proof.ReviewedAt = &now
	proof.AdminNotes = input.Notes
	proof.UpdatedAt = now

	if err := uc.ProofRepo.UpdateProof(proof); err != nil {
		return nil, err
	}

	order, err := uc.OrderRepo.GetOrderByID(proof.OrderID)
	if err != nil {
		return nil, err
	}

	switch input.Decision {
	case proofdto.DecisionApprove:
		if order.Status == domain.StatusPending || order.Status == domain.StatusProcessing {
			if err := uc.OrderRepo.UpdateOrderStatus(order.ID, order.Status, domain.StatusShipped); err != nil {
				return nil, err
			}
			order.Status = domain.StatusShipped
		}
	case proofdto.DecisionReject:
		if order.Status == domain.StatusProcessing || order.Status == domain.StatusShipped {
			if err := uc.OrderRepo.UpdateOrderStatus(order.ID, order.Status, domain.StatusPending); err != nil {
				return nil, err
			}
			order.Status = domain.StatusPending
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.ProofsReviewedTotal.WithLabelValues(string(input.Decision)).Inc()
		uc.Metrics.ProofReviewLatency.Observe(now.Sub(uploadedAt).Seconds())
	}
	uc.publish(publisher.SettlementEvent{
		Type:       publisher.EventProofReviewed,
		OrderID:    proof.OrderID,
		VendorID:   proof.VendorID,
		ProofID:    proof.ID,
		Status:     string(proof.VerificationStatus),
		Reason:     input.Notes,
		OccurredAt: now.Unix(),
	})

	return &proofdto.ProofOutput{Proof: *proof, OrderStatus: order.Status}, nil
}
