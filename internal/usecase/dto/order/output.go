package orderdto

import (
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
)

// EscrowSnapshot is the caller-facing view of an order's escrow state.
type EscrowSnapshot struct {
	Status       domain.EscrowStatus
	Amount       float64
	ReleaseDate  *time.Time
	VendorShares map[string]float64
}

type OrderOutput struct {
	Order  domain.Order
	Escrow EscrowSnapshot
}

type ListOrdersOutput struct {
	Orders []*domain.Order
	Total  int64
}

func Snapshot(order *domain.Order) EscrowSnapshot {
	return EscrowSnapshot{
		Status:       order.EscrowStatus,
		Amount:       order.EscrowAmount,
		ReleaseDate:  order.EscrowReleaseDate,
		VendorShares: order.VendorShares(),
	}
}
