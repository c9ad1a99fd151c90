package proof

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	proofdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/proof"
)

// UploadProof accepts the first proof for an order or a replacement while
// the reupload window is open. Uploading never advances the order status;
// only the admin decision does.
func (uc *DefaultProofUsecase) UploadProof(input *proofdto.UploadProofInput) (*proofdto.ProofOutput, error) {
	if input.ActorRole != domain.RoleVendor {
		return nil, fmt.Errorf("%w: only vendors upload delivery proofs", domain.ErrUnauthorized)
	}
	if len(input.Image) == 0 {
		return nil, fmt.Errorf("%w: proof image is required", domain.ErrValidation)
	}

	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if _, ok := order.VendorShares()[input.ActorID]; !ok {
		return nil, fmt.Errorf("%w: vendor has no items in this order", domain.ErrUnauthorized)
	}
	if order.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: proofs are uploaded while the order is pending, got %s",
			domain.ErrStateConflict, order.Status)
	}

	now := uc.now()

	existing, err := uc.ProofRepo.GetProofByOrderID(input.OrderID)
	switch {
	case err == nil:
		return uc.reupload(existing, input, now)
	case errors.Is(err, domain.ErrNotFound):
		return uc.firstUpload(order, input, now)
	default:
		return nil, err
	}
}

func (uc *DefaultProofUsecase) firstUpload(order *domain.Order, input *proofdto.UploadProofInput, now time.Time) (*proofdto.ProofOutput, error) {
	imageID, imageURL, err := uc.Storage.StoreImage(context.Background(), input.Image, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store proof image: %w", err)
	}

	proof := &domain.DeliveryProof{
		ID:       uuid.New().String(),
		OrderID:  order.ID,
		VendorID: input.ActorID,

		ImageID:  imageID,
		ImageURL: imageURL,
		Notes:    input.Notes,
		Location: input.Location,

		UploadedAt:        now,
		ReuploadExpiresAt: now.Add(domain.ReuploadWindow),
		CanReupload:       true,

		VerificationStatus: domain.ProofPending,

		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ProofRepo.CreateProof(proof); err != nil {
		return nil, err
	}
	if err := uc.OrderRepo.SetProofID(order.ID, proof.ID); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.ProofsUploadedTotal.WithLabelValues("initial").Inc()
	}
	return &proofdto.ProofOutput{Proof: *proof, OrderStatus: order.Status}, nil
}

func (uc *DefaultProofUsecase) reupload(proof *domain.DeliveryProof, input *proofdto.UploadProofInput, now time.Time) (*proofdto.ProofOutput, error) {
	if proof.VendorID != input.ActorID {
		return nil, fmt.Errorf("%w: proof belongs to another vendor", domain.ErrUnauthorized)
	}
	if !proof.ReuploadOpen(now) {
		if uc.Metrics != nil {
			uc.Metrics.ReuploadExpiredTotal.Inc()
		}
		return nil, domain.ErrReuploadWindowExpired
	}

	imageID, imageURL, err := uc.Storage.StoreImage(context.Background(), input.Image, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store proof image: %w", err)
	}

	proof.ImageID = imageID
	proof.ImageURL = imageURL
	proof.Notes = input.Notes
	proof.Location = input.Location
	// each successful reupload slides the window forward
	proof.UploadedAt = now
	proof.ReuploadExpiresAt = now.Add(domain.ReuploadWindow)
	proof.VerificationStatus = domain.ProofPending
	proof.ReviewerID = ""
	proof.ReviewedAt = nil
	proof.UpdatedAt = now

	if err := uc.ProofRepo.UpdateProof(proof); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.ProofsUploadedTotal.WithLabelValues("reupload").Inc()
	}

	order, err := uc.OrderRepo.GetOrderByID(proof.OrderID)
	if err != nil {
		return nil, err
	}
	return &proofdto.ProofOutput{Proof: *proof, OrderStatus: order.Status}, nil
}
