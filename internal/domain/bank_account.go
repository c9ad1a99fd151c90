package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// BankAccount holds encrypted payout credentials. Card-like fields are stored
// as vault ciphertext (ivHex:cipherHex); only the bank name stays plaintext.
type BankAccount struct {
	ID       string
	UserID   string
	RoleType Role

	EncryptedCardNumber string
	EncryptedExpiry     string
	EncryptedCVV        string
	BankName            string
	AccountHolder       string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
