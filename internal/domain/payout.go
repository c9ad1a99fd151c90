package domain

import "time"

type PayoutStatus string

const (
	// PayoutCompleted means the rail accepted the transfer.
	PayoutCompleted PayoutStatus = "completed"
	// PayoutSimulated means the balance debit was applied but the rail call
	// failed. The debit is deliberately not rolled back; the payout is kept
	// for reconciliation.
	PayoutSimulated PayoutStatus = "simulated"
)

type Payout struct {
	ID             string
	VendorID       string
	Amount         float64
	Description    string
	ReferenceCode  string
	RailTransferID string
	Status         PayoutStatus
	CreatedAt      time.Time
}
