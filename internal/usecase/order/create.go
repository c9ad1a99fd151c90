package order

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	orderdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/order"
)

// totalTolerance absorbs float drift between the storefront's arithmetic and
// ours. Anything beyond half a cent is a real mismatch.
const totalTolerance = 0.005

// CreateOrder accepts a checked-out cart: it charges the customer's wallet,
// persists the order with a day-scoped order number and places the full
// total on escrow hold.
func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	now := uc.now()

	// wallets are created lazily, seed before charging
	if _, err := uc.CustomerBalanceRepo.GetOrCreate(input.CustomerID); err != nil {
		return nil, err
	}
	if err := uc.CustomerBalanceRepo.Deduct(input.CustomerID, input.Total, now); err != nil {
		return nil, fmt.Errorf("charge customer %s: %w", input.CustomerID, err)
	}

	order := buildOrder(input, now)
	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		// give the charge back, the order never existed
		if addErr := uc.CustomerBalanceRepo.Add(input.CustomerID, input.Total, now); addErr != nil {
			return nil, fmt.Errorf("create order: %w (refund of charge also failed: %v)", err, addErr)
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := uc.Coordinator.HoldEscrow(order); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersCreatedTotal.WithLabelValues(string(order.ShippingMethod)).Inc()
		uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(string(order.ShippingMethod)).Add(order.Total)
	}
	uc.publish(publisher.SettlementEvent{
		Type:        publisher.EventOrderCreated,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Amount:      order.Total,
		Status:      string(order.Status),
		OccurredAt:  now.Unix(),
	})

	return &orderdto.OrderOutput{
		Order:  *order,
		Escrow: orderdto.Snapshot(order),
	}, nil
}

func validateCreateInput(input *orderdto.CreateOrderInput) error {
	if input.CustomerID == "" {
		return fmt.Errorf("%w: customer id is required", domain.ErrValidation)
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", domain.ErrValidation)
	}

	subtotal := 0.0
	for i, item := range input.Items {
		if item.ProductID == "" || item.VendorID == "" {
			return fmt.Errorf("%w: item %d is missing product or vendor id", domain.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", domain.ErrValidation, i)
		}
		if item.UnitPrice <= 0 {
			return fmt.Errorf("%w: item %d has non-positive price", domain.ErrValidation, i)
		}
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	subtotal = domain.RoundMoney(subtotal)

	if input.Shipping < 0 || input.Tax < 0 {
		return fmt.Errorf("%w: shipping and tax cannot be negative", domain.ErrValidation)
	}
	if math.Abs(subtotal-input.Subtotal) > totalTolerance {
		return fmt.Errorf("%w: subtotal %.2f does not match items (%.2f)",
			domain.ErrValidation, input.Subtotal, subtotal)
	}
	expectedTotal := domain.RoundMoney(subtotal + input.Shipping + input.Tax)
	if math.Abs(expectedTotal-input.Total) > totalTolerance {
		return fmt.Errorf("%w: total %.2f does not match subtotal+shipping+tax (%.2f)",
			domain.ErrValidation, input.Total, expectedTotal)
	}

	switch input.ShippingMethod {
	case domain.ShippingFree, domain.ShippingStandard, domain.ShippingExpress:
	default:
		return fmt.Errorf("%w: unknown shipping method %q", domain.ErrValidation, input.ShippingMethod)
	}
	return nil
}

func buildOrder(input *orderdto.CreateOrderInput, now time.Time) *domain.Order {
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.OrderItem{
			ID:        uuid.New().String(),
			ProductID: item.ProductID,
			VendorID:  item.VendorID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &domain.Order{
		ID:         uuid.New().String(),
		CustomerID: input.CustomerID,
		Items:      items,

		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPaid,

		EscrowStatus: domain.EscrowHeld,
		EscrowAmount: domain.RoundMoney(input.Total),

		Subtotal: domain.RoundMoney(input.Subtotal),
		Shipping: domain.RoundMoney(input.Shipping),
		Tax:      domain.RoundMoney(input.Tax),
		Total:    domain.RoundMoney(input.Total),

		ShippingMethod:    input.ShippingMethod,
		EstimatedDelivery: domain.DeliveryEstimate(input.ShippingMethod, now),

		CreatedAt: now,
		UpdatedAt: now,
	}
}
