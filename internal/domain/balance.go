package domain

import (
	"math"
	"time"
)

const DefaultMinimumPayout = 10.00

// Sandbox wallets are seeded with a large spending balance; no real money
// moves through this service.
const CustomerSeedBalance = 1_000_000.00

// VendorBalance is the two-pool vendor ledger. PendingBalance holds escrowed
// funds that are visible but not withdrawable; AvailableBalance is released
// and withdrawable. TotalEarnings is monotonic non-decreasing.
type VendorBalance struct {
	VendorID      string
	BankAccountID string

	TotalEarnings    float64
	AvailableBalance float64
	PendingBalance   float64
	TotalPayouts     float64

	LastPayout       *time.Time
	LastPayoutAmount float64

	MinimumPayoutAmount float64
	CommissionRate      float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerBalance is the single-pool simulated wallet.
type CustomerBalance struct {
	CustomerID      string
	SpendingBalance float64
	TotalSpent      float64
	LastTransaction *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoundMoney rounds to cents. All ledger math goes through it so repeated
// credits and debits cannot accumulate float drift.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
