package proof

import (
	"log/slog"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/metrics"
	proofdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/proof"
)

type ProofUsecase interface {
	UploadProof(input *proofdto.UploadProofInput) (*proofdto.ProofOutput, error)
	ReviewProof(input *proofdto.ReviewProofInput) (*proofdto.ProofOutput, error)

	GetProofByOrderID(actorID string, actorRole domain.Role, orderID string) (*domain.DeliveryProof, error)
	ListProofs(input *proofdto.ListProofsInput) (*proofdto.ListProofsOutput, error)
}

type DefaultProofUsecase struct {
	ProofRepo domain.ProofRepository
	OrderRepo domain.OrderRepository
	Storage   domain.ObjectStorage
	Publisher publisher.SettlementPublisher
	Metrics   *metrics.SettlementMetrics
	NowFn     func() time.Time
}

func NewDefaultProofUsecase(
	proofRepo domain.ProofRepository,
	orderRepo domain.OrderRepository,
	storage domain.ObjectStorage,
	pub publisher.SettlementPublisher,
	m *metrics.SettlementMetrics,
) *DefaultProofUsecase {
	return &DefaultProofUsecase{
		ProofRepo: proofRepo,
		OrderRepo: orderRepo,
		Storage:   storage,
		Publisher: pub,
		Metrics:   m,
		NowFn:     time.Now,
	}
}

func (uc *DefaultProofUsecase) now() time.Time {
	if uc.NowFn != nil {
		return uc.NowFn()
	}
	return time.Now()
}

func (uc *DefaultProofUsecase) publish(event publisher.SettlementEvent) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishSettlement(event); err != nil {
		slog.Warn("failed to publish settlement event",
			"type", event.Type, "proof_id", event.ProofID, "error", err)
	}
}
