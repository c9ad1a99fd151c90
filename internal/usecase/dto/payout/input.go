package payoutdto

import "github.com/vendaro/vendaro-settlement-service/internal/domain"

type RequestPayoutInput struct {
	ActorID     string
	ActorRole   domain.Role
	VendorID    string
	Amount      float64
	Description string
}

type AddEarningsInput struct {
	ActorID     string
	ActorRole   domain.Role
	VendorID    string
	Amount      float64
	Description string
}

type ConnectBankAccountInput struct {
	ActorID   string
	ActorRole domain.Role

	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string

	BankName      string
	AccountHolder string
}
