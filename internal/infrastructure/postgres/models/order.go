package models

import (
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
)

type OrderModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	OrderNumber string `gorm:"uniqueIndex"`
	CustomerID  string `gorm:"index"`

	Status        domain.OrderStatus `gorm:"index:idx_status"`
	PaymentStatus domain.PaymentStatus

	EscrowStatus      domain.EscrowStatus `gorm:"index:idx_escrow_status"`
	EscrowAmount      float64
	EscrowReleaseDate *time.Time
	PendingCredited   bool
	ProofID           string

	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64

	ShippingMethod    string
	TrackingNumber    string
	EstimatedDelivery time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time `gorm:"index:idx_created_at"`
	UpdatedAt time.Time
}

type OrderItemModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;index"`
	ProductID string
	VendorID  string `gorm:"index"`
	Quantity  int32
	UnitPrice float64
}

// OrderDaySequenceModel backs atomic order-number allocation. One row per
// calendar day; the counter is advanced with an upsert inside the order
// creation transaction.
type OrderDaySequenceModel struct {
	Day     string `gorm:"primaryKey"`
	Counter int64
}
