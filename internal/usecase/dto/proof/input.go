package proofdto

import "github.com/vendaro/vendaro-settlement-service/internal/domain"

type UploadProofInput struct {
	ActorID     string
	ActorRole   domain.Role
	OrderID     string
	Image       []byte
	ContentType string
	Notes       string
	Location    string
}

type ReviewDecision string

const (
	DecisionApprove        ReviewDecision = "approve"
	DecisionReject         ReviewDecision = "reject"
	DecisionRequiresReview ReviewDecision = "requires_review"
)

type ReviewProofInput struct {
	ActorID   string
	ActorRole domain.Role
	ProofID   string
	Decision  ReviewDecision
	Notes     string
}

type ListProofsInput struct {
	ActorID   string
	ActorRole domain.Role
	Status    domain.VerificationStatus
	Page      int
	Limit     int
}
