package order

import (
	"log/slog"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/metrics"
	orderdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/order"
	"github.com/vendaro/vendaro-settlement-service/internal/usecase/settlement"
)

type OrderUsecase interface {
	CreateOrder(input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)

	UpdateOrderStatus(input *orderdto.UpdateOrderStatusInput) (*orderdto.OrderOutput, error)
	CancelOrder(input *orderdto.CancelOrderInput) (*orderdto.OrderOutput, error)
	AttachTracking(input *orderdto.AttachTrackingInput) (*orderdto.OrderOutput, error)

	GetOrderByID(actorID string, actorRole domain.Role, orderID string) (*orderdto.OrderOutput, error)
	GetOrderByNumber(actorID string, actorRole domain.Role, orderNumber string) (*orderdto.OrderOutput, error)
	ListOrders(input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error)
}

type DefaultOrderUsecase struct {
	OrderRepo           domain.OrderRepository
	CustomerBalanceRepo domain.CustomerBalanceRepository
	Coordinator         *settlement.Coordinator
	Publisher           publisher.SettlementPublisher
	Metrics             *metrics.SettlementMetrics
	NowFn               func() time.Time
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	customerBalanceRepo domain.CustomerBalanceRepository,
	coordinator *settlement.Coordinator,
	pub publisher.SettlementPublisher,
	m *metrics.SettlementMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo:           orderRepo,
		CustomerBalanceRepo: customerBalanceRepo,
		Coordinator:         coordinator,
		Publisher:           pub,
		Metrics:             m,
		NowFn:               time.Now,
	}
}

func (uc *DefaultOrderUsecase) now() time.Time {
	if uc.NowFn != nil {
		return uc.NowFn()
	}
	return time.Now()
}

func (uc *DefaultOrderUsecase) publish(event publisher.SettlementEvent) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishSettlement(event); err != nil {
		slog.Warn("failed to publish settlement event",
			"type", event.Type, "order_id", event.OrderID, "error", err)
	}
}
