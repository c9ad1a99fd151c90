package domain

import "time"

type VerificationStatus string

const (
	ProofPending        VerificationStatus = "pending"
	ProofApproved       VerificationStatus = "approved"
	ProofRejected       VerificationStatus = "rejected"
	ProofRequiresReview VerificationStatus = "requires_review"
)

// ReuploadWindow is the sliding window during which a vendor may replace a
// submitted proof. Every successful reupload resets it, so there is no hard
// cumulative cutoff.
const ReuploadWindow = 15 * time.Minute

// DeliveryProof is vendor-submitted evidence that goods were shipped,
// subject to admin verification. Exactly one proof exists per order.
type DeliveryProof struct {
	ID       string
	OrderID  string
	VendorID string

	ImageID  string
	ImageURL string
	Notes    string
	Location string

	UploadedAt        time.Time
	ReuploadExpiresAt time.Time
	CanReupload       bool

	VerificationStatus VerificationStatus
	ReviewerID         string
	ReviewedAt         *time.Time
	AdminNotes         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReuploadOpen reports whether a replacement upload is still permitted.
func (p *DeliveryProof) ReuploadOpen(now time.Time) bool {
	return p.CanReupload && now.Before(p.ReuploadExpiresAt)
}
