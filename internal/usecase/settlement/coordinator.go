package settlement

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/metrics"
)

// Coordinator drives every escrow movement: the initial hold at checkout,
// the release on delivery, refunds on cancellation and the admin force
// release. Balance math lives in the repositories; the coordinator owns
// sequencing, idempotency of re-delivery and the event/metric fan-out.
type Coordinator struct {
	orderRepo      domain.OrderRepository
	settlementRepo domain.SettlementRepository
	publisher      publisher.SettlementPublisher
	metrics        *metrics.SettlementMetrics
	nowFn          func() time.Time
}

func NewCoordinator(
	orderRepo domain.OrderRepository,
	settlementRepo domain.SettlementRepository,
	pub publisher.SettlementPublisher,
	m *metrics.SettlementMetrics,
) *Coordinator {
	return &Coordinator{
		orderRepo:      orderRepo,
		settlementRepo: settlementRepo,
		publisher:      pub,
		metrics:        m,
		nowFn:          time.Now,
	}
}

// HoldEscrow applies the per-vendor pending credits for a freshly created
// order. The credit fan-out is guarded by the order's pending_credited flag,
// so calling it again for the same order is a no-op.
func (c *Coordinator) HoldEscrow(order *domain.Order) error {
	if err := c.settlementRepo.CreditPending(order.ID); err != nil {
		c.countError("hold_escrow")
		return fmt.Errorf("hold escrow for order %s: %w", order.ID, err)
	}

	if c.metrics != nil {
		c.metrics.EscrowHeldAmountTotal.WithLabelValues("usd").Add(order.EscrowAmount)
		c.metrics.EscrowHeldGauge.Inc()
	}
	c.publish(publisher.SettlementEvent{
		Type:        publisher.EventEscrowHeld,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Amount:      order.EscrowAmount,
		Status:      string(domain.EscrowHeld),
		OccurredAt:  c.nowFn().Unix(),
	})
	return nil
}

// ReleaseEscrow settles a delivered order: every vendor share moves from
// pending to available and escrow flips to released. A repeat call for an
// already released order returns nil so delivery confirmation can be retried
// safely.
func (c *Coordinator) ReleaseEscrow(orderID string) error {
	return c.release(orderID, "")
}

// ForceRelease is the admin override for stuck escrows. It behaves exactly
// like ReleaseEscrow but records the operator's reason on the event.
func (c *Coordinator) ForceRelease(orderID, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: force release requires a reason", domain.ErrValidation)
	}
	return c.release(orderID, reason)
}

func (c *Coordinator) release(orderID, reason string) error {
	now := c.nowFn()
	if err := c.settlementRepo.ReleaseEscrow(orderID, now); err != nil {
		if errors.Is(err, domain.ErrEscrowNotHeld) {
			order, loadErr := c.orderRepo.GetOrderByID(orderID)
			if loadErr == nil && order.EscrowStatus == domain.EscrowReleased {
				return nil
			}
			return fmt.Errorf("release escrow for order %s: %w", orderID, err)
		}
		c.countError("release_escrow")
		return fmt.Errorf("release escrow for order %s: %w", orderID, err)
	}

	order, err := c.orderRepo.GetOrderByID(orderID)
	if err != nil {
		// released but we cannot enrich the event; publish what we have
		slog.Warn("escrow released but order reload failed",
			"order_id", orderID, "error", err)
		order = &domain.Order{ID: orderID}
	}

	if c.metrics != nil {
		c.metrics.EscrowReleasedAmountTotal.WithLabelValues("usd").Add(order.EscrowAmount)
		c.metrics.EscrowHeldGauge.Dec()
	}
	c.publish(publisher.SettlementEvent{
		Type:        publisher.EventEscrowReleased,
		OrderID:     orderID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Amount:      order.EscrowAmount,
		Status:      string(domain.EscrowReleased),
		Reason:      reason,
		OccurredAt:  now.Unix(),
	})
	return nil
}

// RefundEscrow reverts the pending credits of a cancelled order and returns
// the full order total to the customer's wallet.
func (c *Coordinator) RefundEscrow(orderID string) error {
	now := c.nowFn()
	if err := c.settlementRepo.RefundEscrow(orderID, now); err != nil {
		if errors.Is(err, domain.ErrEscrowNotHeld) {
			order, loadErr := c.orderRepo.GetOrderByID(orderID)
			if loadErr == nil && order.EscrowStatus == domain.EscrowRefunded {
				return nil
			}
			return fmt.Errorf("refund escrow for order %s: %w", orderID, err)
		}
		c.countError("refund_escrow")
		return fmt.Errorf("refund escrow for order %s: %w", orderID, err)
	}

	order, err := c.orderRepo.GetOrderByID(orderID)
	if err != nil {
		slog.Warn("escrow refunded but order reload failed",
			"order_id", orderID, "error", err)
		order = &domain.Order{ID: orderID}
	}

	if c.metrics != nil {
		c.metrics.EscrowRefundedAmountTotal.WithLabelValues("usd").Add(order.Total)
		c.metrics.EscrowHeldGauge.Dec()
	}
	c.publish(publisher.SettlementEvent{
		Type:        publisher.EventEscrowRefunded,
		OrderID:     orderID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Amount:      order.Total,
		Status:      string(domain.EscrowRefunded),
		OccurredAt:  now.Unix(),
	})
	return nil
}

// ResumePendingReleases settles delivered orders whose escrow is still held,
// typically after a crash between the status flip and the release fan-out.
// It returns how many orders were settled.
func (c *Coordinator) ResumePendingReleases() (int, error) {
	orders, err := c.orderRepo.FindUnreleasedDelivered()
	if err != nil {
		return 0, fmt.Errorf("find unreleased delivered orders: %w", err)
	}

	released := 0
	for _, order := range orders {
		if err := c.ReleaseEscrow(order.ID); err != nil {
			slog.Error("resume release failed",
				"order_id", order.ID, "error", err)
			continue
		}
		released++
	}
	return released, nil
}

func (c *Coordinator) publish(event publisher.SettlementEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.PublishSettlement(event); err != nil {
		slog.Warn("failed to publish settlement event",
			"type", event.Type, "order_id", event.OrderID, "error", err)
	}
}

func (c *Coordinator) countError(operation string) {
	if c.metrics != nil {
		c.metrics.SettlementErrorsTotal.WithLabelValues(operation).Inc()
	}
}
