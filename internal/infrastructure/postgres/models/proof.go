package models

import (
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
)

type DeliveryProofModel struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	OrderID  string `gorm:"uniqueIndex;type:uuid"`
	VendorID string `gorm:"index"`

	ImageID  string
	ImageURL string
	Notes    string
	Location string

	UploadedAt        time.Time `gorm:"index:idx_uploaded_at"`
	ReuploadExpiresAt time.Time
	CanReupload       bool

	VerificationStatus domain.VerificationStatus `gorm:"index:idx_verification_status"`
	ReviewerID         string
	ReviewedAt         *time.Time
	AdminNotes         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
