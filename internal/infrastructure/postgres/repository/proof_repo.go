package repository

import (
	"errors"
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProofRepository struct {
	DB *gorm.DB
}

func NewDefaultProofRepository(db *gorm.DB) *DefaultProofRepository {
	return &DefaultProofRepository{DB: db}
}

func (r *DefaultProofRepository) CreateProof(proof *domain.DeliveryProof) error {
	proofModel := mappers.ToGORMProof(proof)
	return r.DB.Create(proofModel).Error
}

func (r *DefaultProofRepository) GetProofByID(proofID string) (*domain.DeliveryProof, error) {
	var proof models.DeliveryProofModel
	if err := r.DB.First(&proof, "id = ?", proofID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("proof %s: %w", proofID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainProof(&proof), nil
}

func (r *DefaultProofRepository) GetProofByOrderID(orderID string) (*domain.DeliveryProof, error) {
	var proof models.DeliveryProofModel
	if err := r.DB.First(&proof, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("proof for order %s: %w", orderID, domain.ErrNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainProof(&proof), nil
}

func (r *DefaultProofRepository) UpdateProof(proof *domain.DeliveryProof) error {
	proofModel := mappers.ToGORMProof(proof)
	res := r.DB.Model(&models.DeliveryProofModel{}).
		Where("id = ?", proof.ID).
		Select("*").
		Omit("id", "order_id", "created_at").
		Updates(proofModel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("proof %s: %w", proof.ID, domain.ErrNotFound)
	}
	return nil
}

// ListProofs serves the admin review queue. Pending proofs are served oldest
// upload first so review is FIFO-fair; other statuses newest first.
func (r *DefaultProofRepository) ListProofs(status domain.VerificationStatus, page, limit int) ([]*domain.DeliveryProof, int64, error) {
	var proofModels []models.DeliveryProofModel
	var total int64

	baseQuery := r.DB.Model(&models.DeliveryProofModel{})
	if status != "" {
		baseQuery = baseQuery.Where("verification_status = ?", status)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proofs: %w", err)
	}

	order := "uploaded_at DESC"
	if status == domain.ProofPending {
		order = "uploaded_at ASC"
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	err := baseQuery.
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&proofModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find proofs: %w", err)
	}

	proofs := make([]*domain.DeliveryProof, len(proofModels))
	for i, proofModel := range proofModels {
		proofs[i] = mappers.ToDomainProof(&proofModel)
	}

	return proofs, total, nil
}
