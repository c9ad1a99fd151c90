package mappers

import (
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainProof(model *models.DeliveryProofModel) *domain.DeliveryProof {
	return &domain.DeliveryProof{
		ID:                 model.ID,
		OrderID:            model.OrderID,
		VendorID:           model.VendorID,
		ImageID:            model.ImageID,
		ImageURL:           model.ImageURL,
		Notes:              model.Notes,
		Location:           model.Location,
		UploadedAt:         model.UploadedAt,
		ReuploadExpiresAt:  model.ReuploadExpiresAt,
		CanReupload:        model.CanReupload,
		VerificationStatus: model.VerificationStatus,
		ReviewerID:         model.ReviewerID,
		ReviewedAt:         model.ReviewedAt,
		AdminNotes:         model.AdminNotes,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMProof(proof *domain.DeliveryProof) *models.DeliveryProofModel {
	return &models.DeliveryProofModel{
		ID:                 proof.ID,
		OrderID:            proof.OrderID,
		VendorID:           proof.VendorID,
		ImageID:            proof.ImageID,
		ImageURL:           proof.ImageURL,
		Notes:              proof.Notes,
		Location:           proof.Location,
		UploadedAt:         proof.UploadedAt,
		ReuploadExpiresAt:  proof.ReuploadExpiresAt,
		CanReupload:        proof.CanReupload,
		VerificationStatus: proof.VerificationStatus,
		ReviewerID:         proof.ReviewerID,
		ReviewedAt:         proof.ReviewedAt,
		AdminNotes:         proof.AdminNotes,
		CreatedAt:          proof.CreatedAt,
		UpdatedAt:          proof.UpdatedAt,
	}
}
