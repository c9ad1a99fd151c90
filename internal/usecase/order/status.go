package order

import (
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	orderdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/order"
)

// UpdateOrderStatus is the admin-only transition endpoint. Moving to
// delivered releases the escrow, moving to cancelled refunds it.
func (uc *DefaultOrderUsecase) UpdateOrderStatus(input *orderdto.UpdateOrderStatusInput) (*orderdto.OrderOutput, error) {
	if input.ActorRole != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can set order status directly", domain.ErrUnauthorized)
	}

	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.CanTransitionTo(input.NewStatus) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s",
			domain.ErrStateConflict, order.Status, input.NewStatus)
	}

	oldStatus := order.Status
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, oldStatus, input.NewStatus); err != nil {
		return nil, err
	}

	switch input.NewStatus {
	case domain.StatusDelivered:
		if err := uc.Coordinator.ReleaseEscrow(order.ID); err != nil {
			// status already flipped; the release worker will retry
			return nil, err
		}
	case domain.StatusCancelled:
		if err := uc.Coordinator.RefundEscrow(order.ID); err != nil {
			return nil, err
		}
	}

	return uc.finishTransition(order.ID, oldStatus, input.NewStatus)
}

// CancelOrder lets the customer who placed a still-pending order back out.
// The escrow refund restores the full order total to their wallet.
func (uc *DefaultOrderUsecase) CancelOrder(input *orderdto.CancelOrderInput) (*orderdto.OrderOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != input.ActorID {
		return nil, fmt.Errorf("%w: order belongs to another customer", domain.ErrUnauthorized)
	}
	if !order.CanTransitionTo(domain.StatusCancelled) {
		return nil, fmt.Errorf("%w: only pending orders can be cancelled", domain.ErrStateConflict)
	}

	oldStatus := order.Status
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, oldStatus, domain.StatusCancelled); err != nil {
		return nil, err
	}
	if err := uc.Coordinator.RefundEscrow(order.ID); err != nil {
		return nil, err
	}

	return uc.finishTransition(order.ID, oldStatus, domain.StatusCancelled)
}

// AttachTracking records the vendor's tracking number and moves the order to
// shipped. Only a vendor with items in the order may call it.
func (uc *DefaultOrderUsecase) AttachTracking(input *orderdto.AttachTrackingInput) (*orderdto.OrderOutput, error) {
	if input.TrackingNumber == "" {
		return nil, fmt.Errorf("%w: tracking number is required", domain.ErrValidation)
	}

	order, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if _, ok := order.VendorShares()[input.ActorID]; !ok {
		return nil, fmt.Errorf("%w: vendor has no items in this order", domain.ErrUnauthorized)
	}
	if !order.CanTransitionTo(domain.StatusShipped) {
		return nil, fmt.Errorf("%w: cannot ship order in status %s",
			domain.ErrStateConflict, order.Status)
	}

	if err := uc.OrderRepo.AttachTracking(order.ID, input.TrackingNumber); err != nil {
		return nil, err
	}
	oldStatus := order.Status
	if err := uc.OrderRepo.UpdateOrderStatus(order.ID, oldStatus, domain.StatusShipped); err != nil {
		return nil, err
	}

	return uc.finishTransition(order.ID, oldStatus, domain.StatusShipped)
}

func (uc *DefaultOrderUsecase) finishTransition(orderID string, from, to domain.OrderStatus) (*orderdto.OrderOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OrderStatusChangedTotal.WithLabelValues(string(from), string(to)).Inc()
	}
	uc.publish(publisher.SettlementEvent{
		Type:        publisher.EventOrderStatus,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Status:      string(to),
		OccurredAt:  uc.now().Unix(),
	})

	return &orderdto.OrderOutput{
		Order:  *order,
		Escrow: orderdto.Snapshot(order),
	}, nil
}
