package models

import "time"

type VendorBalanceModel struct {
	VendorID      string `gorm:"primaryKey"`
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

type CustomerBalanceModel struct {
	CustomerID      string `gorm:"primaryKey"`
	SpendingBalance float64
	TotalSpent      float64
	LastTransaction *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PayoutModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	VendorID       string `gorm:"index"`
	Amount         float64
	Description    string
	ReferenceCode  string `gorm:"uniqueIndex"`
	RailTransferID string
	Status         string
	CreatedAt      time.Time
}

type BankAccountModel struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	UserID   string `gorm:"uniqueIndex"`
	RoleType string

	EncryptedCardNumber string
	EncryptedExpiry     string
	EncryptedCVV        string
	BankName            string
	AccountHolder       string

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
