package rail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
)

// SandboxRail is the development payment rail. It accepts every transfer to
// an active account and fabricates a transfer id; production deployments
// swap in the real provider SDK behind the same interface.
type SandboxRail struct{}

func NewSandboxRail() *SandboxRail {
	return &SandboxRail{}
}

func (r *SandboxRail) CreateTransfer(ctx context.Context, account *domain.BankAccount, amount float64, description string) (string, string, error) {
	if account == nil || !account.IsActive {
		return "", "", fmt.Errorf("inactive payout account: %w", domain.ErrExternalRail)
	}

	transferID := "tr_" + uuid.New().String()
	slog.Info("sandbox transfer created",
		"transfer_id", transferID,
		"bank", account.BankName,
		"amount", amount,
		"description", description,
	)
	return transferID, "completed", nil
}

// SandboxStorage keeps no bytes; it hands back stable references the way the
// real object store does.
type SandboxStorage struct {
	BaseURL string
}

func NewSandboxStorage(baseURL string) *SandboxStorage {
	return &SandboxStorage{BaseURL: baseURL}
}

func (s *SandboxStorage) StoreImage(ctx context.Context, data []byte, contentType string) (string, string, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("empty image payload: %w", domain.ErrValidation)
	}
	imageID := uuid.New().String()
	return imageID, fmt.Sprintf("%s/proofs/%s", s.BaseURL, imageID), nil
}
