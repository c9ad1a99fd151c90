package settlement

import (
	"fmt"
	"sync"
	"time"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
)

// memStore backs the fake repositories with the same guarded-update
// semantics the postgres layer provides.
type memStore struct {
	mu               sync.Mutex
	orders           map[string]*domain.Order
	vendorBalances   map[string]*domain.VendorBalance
	customerBalances map[string]*domain.CustomerBalance
	orderSeq         int
}

func newMemStore() *memStore {
	return &memStore{
		orders:           make(map[string]*domain.Order),
		vendorBalances:   make(map[string]*domain.VendorBalance),
		customerBalances: make(map[string]*domain.CustomerBalance),
	}
}

func (s *memStore) vendorBalance(vendorID string) *domain.VendorBalance {
	if b, ok := s.vendorBalances[vendorID]; ok {
		return b
	}
	b := &domain.VendorBalance{
		VendorID:            vendorID,
		MinimumPayoutAmount: domain.DefaultMinimumPayout,
	}
	s.vendorBalances[vendorID] = b
	return b
}

func (s *memStore) customerBalance(customerID string) *domain.CustomerBalance {
	if b, ok := s.customerBalances[customerID]; ok {
		return b
	}
	b := &domain.CustomerBalance{
		CustomerID:      customerID,
		SpendingBalance: domain.CustomerSeedBalance,
	}
	s.customerBalances[customerID] = b
	return b
}

type fakeOrderRepo struct {
	store *memStore
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orderSeq++
	order.OrderNumber = fmt.Sprintf("ORD-%s-%04d", time.Now().Format("060102"), r.store.orderSeq)
	copied := *order
	r.store.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, order := range r.store.orders {
		if order.OrderNumber == orderNumber {
			copied := *order
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeOrderRepo) UpdateOrderStatus(orderID string, oldStatus, newStatus domain.OrderStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status != oldStatus {
		return domain.ErrStateConflict
	}
	order.Status = newStatus
	return nil
}

func (r *fakeOrderRepo) AttachTracking(orderID string, trackingNumber string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.TrackingNumber = trackingNumber
	return nil
}

func (r *fakeOrderRepo) SetProofID(orderID string, proofID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.ProofID = proofID
	return nil
}

func (r *fakeOrderRepo) ListOrders(filters domain.OrderFilters, page, limit int, sortBy, sortOrder string) ([]*domain.Order, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*domain.Order
	for _, order := range r.store.orders {
		if filters.CustomerID != "" && order.CustomerID != filters.CustomerID {
			continue
		}
		if filters.Status != "" && order.Status != filters.Status {
			continue
		}
		copied := *order
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) FindUnreleasedDelivered() ([]*domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*domain.Order
	for _, order := range r.store.orders {
		if order.Status == domain.StatusDelivered && order.EscrowStatus == domain.EscrowHeld {
			copied := *order
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeSettlementRepo struct {
	store *memStore
}

func (r *fakeSettlementRepo) CreditPending(orderID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.PendingCredited {
		return nil
	}
	if order.EscrowStatus != domain.EscrowHeld {
		return domain.ErrEscrowNotHeld
	}
	order.PendingCredited = true
	for vendorID, share := range order.VendorShares() {
		balance := r.store.vendorBalance(vendorID)
		balance.PendingBalance = domain.RoundMoney(balance.PendingBalance + share)
	}
	return nil
}

func (r *fakeSettlementRepo) ReleaseEscrow(orderID string, now time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.EscrowStatus != domain.EscrowHeld {
		return domain.ErrEscrowNotHeld
	}
	order.EscrowStatus = domain.EscrowReleased
	order.EscrowReleaseDate = &now
	for vendorID, share := range order.VendorShares() {
		balance := r.store.vendorBalance(vendorID)
		balance.PendingBalance = domain.RoundMoney(balance.PendingBalance - share)
		if balance.PendingBalance < 0 {
			balance.PendingBalance = 0
		}
		balance.AvailableBalance = domain.RoundMoney(balance.AvailableBalance + share)
		balance.TotalEarnings = domain.RoundMoney(balance.TotalEarnings + share)
	}
	return nil
}

func (r *fakeSettlementRepo) RefundEscrow(orderID string, now time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.EscrowStatus != domain.EscrowHeld {
		return domain.ErrEscrowNotHeld
	}
	order.EscrowStatus = domain.EscrowRefunded
	order.PaymentStatus = domain.PaymentRefunded
	for vendorID, share := range order.VendorShares() {
		balance := r.store.vendorBalance(vendorID)
		balance.PendingBalance = domain.RoundMoney(balance.PendingBalance - share)
		if balance.PendingBalance < 0 {
			balance.PendingBalance = 0
		}
	}
	customer := r.store.customerBalance(order.CustomerID)
	customer.SpendingBalance = domain.RoundMoney(customer.SpendingBalance + order.Total)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publisher.SettlementEvent
}

func (p *recordingPublisher) PublishSettlement(event publisher.SettlementEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}
