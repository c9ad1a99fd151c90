package proof

import (
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	proofdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/proof"
)

func (uc *DefaultProofUsecase) GetProofByOrderID(actorID string, actorRole domain.Role, orderID string) (*domain.DeliveryProof, error) {
	proof, err := uc.ProofRepo.GetProofByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	switch actorRole {
	case domain.RoleAdmin:
		return proof, nil
	case domain.RoleVendor:
		if proof.VendorID == actorID {
			return proof, nil
		}
	case domain.RoleCustomer:
		order, err := uc.OrderRepo.GetOrderByID(orderID)
		if err != nil {
			return nil, err
		}
		if order.CustomerID == actorID {
			return proof, nil
		}
	}
	return nil, fmt.Errorf("%w: no access to this proof", domain.ErrUnauthorized)
}

// ListProofs serves the admin review queue.
func (uc *DefaultProofUsecase) ListProofs(input *proofdto.ListProofsInput) (*proofdto.ListProofsOutput, error) {
	if input.ActorRole != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins list delivery proofs", domain.ErrUnauthorized)
	}

	page, limit := input.Page, input.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	proofs, total, err := uc.ProofRepo.ListProofs(input.Status, page, limit)
	if err != nil {
		return nil, err
	}
	return &proofdto.ListProofsOutput{Proofs: proofs, Total: total}, nil
}
