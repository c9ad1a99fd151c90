package domain

import "time"

type OrderFilters struct {
	Status     OrderStatus
	CustomerID string
	VendorID   string
	DateFrom   time.Time
	DateTo     time.Time
}

type OrderRepository interface {
	// CreateOrder persists the order and its items and allocates the
	// day-scoped order number in the same transaction.
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrderByNumber(orderNumber string) (*Order, error)
	// UpdateOrderStatus is a guarded compare-and-set: it fails with
	// ErrStateConflict when the order is no longer in oldStatus.
	UpdateOrderStatus(orderID string, oldStatus, newStatus OrderStatus) error
	AttachTracking(orderID string, trackingNumber string) error
	SetProofID(orderID string, proofID string) error
	ListOrders(filters OrderFilters, page, limit int, sortBy, sortOrder string) ([]*Order, int64, error)
	// FindUnreleasedDelivered returns delivered orders whose escrow is still
	// held, so a crashed release fan-out can be resumed.
	FindUnreleasedDelivered() ([]*Order, error)
}
