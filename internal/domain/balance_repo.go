package domain

import "time"

// VendorBalanceRepository mutations are single atomic conditional updates.
// Two concurrent payouts, or an earnings credit racing a payout on the same
// vendor, must not lose an update, so implementations never do a plain
// load-mutate-save round trip.
type VendorBalanceRepository interface {
	GetByVendorID(vendorID string) (*VendorBalance, error)
	// GetOrCreate lazily creates the balance row with default minimum payout.
	GetOrCreate(vendorID string) (*VendorBalance, error)
	LinkBankAccount(vendorID, bankAccountID string) error
	// CreditPending adds to the pending pool in one conditional update.
	// Order-scoped fan-out goes through SettlementRepository; this primitive
	// backs direct credits such as the demo earnings path.
	CreditPending(vendorID string, amount float64, now time.Time) error
	// DebitAvailable fails with ErrInsufficientBalance when amount exceeds
	// the available pool; otherwise it debits and bumps payout totals in one
	// conditional update.
	DebitAvailable(vendorID string, amount float64, now time.Time) error
}

type CustomerBalanceRepository interface {
	GetOrCreate(customerID string) (*CustomerBalance, error)
	// Deduct fails with ErrInsufficientBalance when the spending balance is
	// short; otherwise it decrements and bumps total spent atomically.
	Deduct(customerID string, amount float64, now time.Time) error
	Add(customerID string, amount float64, now time.Time) error
}

// SettlementRepository performs the multi-record escrow mutations. Each
// method runs as one database transaction so a mid-fan-out failure can never
// leave a subset of vendors credited.
type SettlementRepository interface {
	// CreditPending applies the per-vendor pending credits for the order
	// exactly once. A second call is a no-op guarded by the order's
	// pending_credited flag.
	CreditPending(orderID string) error
	// ReleaseEscrow moves every vendor share pending -> available, credits
	// earnings, flips escrow status held -> released and stamps the release
	// date. Fails with ErrEscrowNotHeld when escrow already left held.
	ReleaseEscrow(orderID string, now time.Time) error
	// RefundEscrow reverts the pending credits, flips escrow status
	// held -> refunded and re-credits the customer wallet with the order
	// total. Fails with ErrEscrowNotHeld when escrow already left held.
	RefundEscrow(orderID string, now time.Time) error
}

type PayoutRepository interface {
	CreatePayout(payout *Payout) error
	GetPayoutsByVendorID(vendorID string, page, limit int) ([]*Payout, int64, error)
}

type BankAccountRepository interface {
	GetByUserID(userID string) (*BankAccount, error)
	SaveBankAccount(account *BankAccount) error
}

type ProofRepository interface {
	CreateProof(proof *DeliveryProof) error
	GetProofByID(proofID string) (*DeliveryProof, error)
	GetProofByOrderID(orderID string) (*DeliveryProof, error)
	UpdateProof(proof *DeliveryProof) error
	// ListProofs serves the admin review queue: pending proofs oldest
	// upload first, every other status newest first.
	ListProofs(status VerificationStatus, page, limit int) ([]*DeliveryProof, int64, error)
}
