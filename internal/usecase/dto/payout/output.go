package payoutdto

import "github.com/vendaro/vendaro-settlement-service/internal/domain"

type PayoutOutput struct {
	Payout  domain.Payout
	Balance domain.VendorBalance
}

type BankAccountOutput struct {
	AccountID  string
	BankName   string
	MaskedCard string
	IsActive   bool
}
