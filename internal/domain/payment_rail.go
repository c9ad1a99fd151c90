package domain

import "context"

// PaymentRail abstracts the money-movement provider (ACH/card network).
// The concrete SDK lives outside this service.
type PaymentRail interface {
	CreateTransfer(ctx context.Context, account *BankAccount, amount float64, description string) (transferID string, status string, err error)
}

// ObjectStorage stores proof images and returns an addressable reference.
type ObjectStorage interface {
	StoreImage(ctx context.Context, data []byte, contentType string) (imageID string, imageURL string, err error)
}
