package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type EscrowStatus string

const (
	EscrowHeld     EscrowStatus = "held"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type ShippingMethod string

const (
	ShippingFree     ShippingMethod = "free"
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// OrderItem is a single line item. Quantity and unit price are validated at
// checkout by the storefront; the settlement engine trusts them but still
// guards against obviously broken input.
type OrderItem struct {
	ID        string
	ProductID string
	VendorID  string
	Quantity  int32
	UnitPrice float64
}

func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type Order struct {
	ID          string
	OrderNumber string
	CustomerID  string
	Items       []OrderItem

	Status        OrderStatus
	PaymentStatus PaymentStatus

	EscrowStatus      EscrowStatus
	EscrowAmount      float64
	EscrowReleaseDate *time.Time
	// PendingCredited marks that the per-vendor pending credits for this
	// order have been applied. The settlement coordinator flips it in the
	// same statement that performs the credit so the fan-out cannot fire
	// twice for one order.
	PendingCredited bool
	ProofID         string

	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64

	ShippingMethod    ShippingMethod
	TrackingNumber    string
	EstimatedDelivery time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VendorShares returns each vendor's share of the escrow: the sum of
// price*quantity over that vendor's line items, rounded to cents.
func (o *Order) VendorShares() map[string]float64 {
	shares := make(map[string]float64)
	for _, item := range o.Items {
		shares[item.VendorID] = RoundMoney(shares[item.VendorID] + item.LineTotal())
	}
	return shares
}

// CanTransitionTo reports whether the order status may move to target.
// Escrow status moves are guarded separately at the storage layer.
func (o *Order) CanTransitionTo(target OrderStatus) bool {
	switch target {
	case StatusCancelled:
		return o.Status == StatusPending
	case StatusShipped:
		return o.Status == StatusPending || o.Status == StatusProcessing
	case StatusProcessing:
		return o.Status == StatusPending
	case StatusDelivered:
		// admin-only action, allowed from any non-terminal status
		return o.Status != StatusDelivered && o.Status != StatusCancelled
	default:
		return false
	}
}

// DeliveryEstimate computes the estimated delivery date at creation time.
// It is never recomputed afterwards.
func DeliveryEstimate(method ShippingMethod, now time.Time) time.Time {
	days := 5
	switch method {
	case ShippingFree:
		days = 10
	case ShippingExpress:
		days = 2
	}
	return now.AddDate(0, 0, days)
}
