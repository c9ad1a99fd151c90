package proofdto

import "github.com/vendaro/vendaro-settlement-service/internal/domain"

type ProofOutput struct {
	Proof domain.DeliveryProof
	// OrderStatus reflects the persisted order status after the operation.
	// Upload alone never advances it.
	OrderStatus domain.OrderStatus
}

type ListProofsOutput struct {
	Proofs []*domain.DeliveryProof
	Total  int64
}
