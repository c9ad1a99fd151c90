package orderdto

import "github.com/vendaro/vendaro-settlement-service/internal/domain"

// CreateOrderInput carries checkout output: the storefront has already
// validated totals and adjusted inventory.
type CreateOrderInput struct {
	CustomerID     string
	Items          []CreateOrderItemInput
	Subtotal       float64
	Shipping       float64
	Tax            float64
	Total          float64
	ShippingMethod domain.ShippingMethod
}

type CreateOrderItemInput struct {
	ProductID string
	VendorID  string
	Quantity  int32
	UnitPrice float64
}

type UpdateOrderStatusInput struct {
	ActorID   string
	ActorRole domain.Role
	OrderID   string
	NewStatus domain.OrderStatus
}

type CancelOrderInput struct {
	ActorID string
	OrderID string
}

type AttachTrackingInput struct {
	ActorID        string
	OrderID        string
	TrackingNumber string
}

type ListOrdersInput struct {
	ActorID   string
	ActorRole domain.Role
	Filters   domain.OrderFilters
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}
