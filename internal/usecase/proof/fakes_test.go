package proof

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	publisher "github.com/vendaro/vendaro-settlement-service/internal/infrastructure/kafka"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeOrderRepo) UpdateOrderStatus(orderID string, oldStatus, newStatus domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
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
	return nil
}

func (r *fakeOrderRepo) SetProofID(orderID string, proofID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.ProofID = proofID
	return nil
}

func (r *fakeOrderRepo) ListOrders(filters domain.OrderFilters, page, limit int, sortBy, sortOrder string) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) FindUnreleasedDelivered() ([]*domain.Order, error) {
	return nil, nil
}

type fakeProofRepo struct {
	mu     sync.Mutex
	proofs map[string]*domain.DeliveryProof
}

func newFakeProofRepo() *fakeProofRepo {
	return &fakeProofRepo{proofs: make(map[string]*domain.DeliveryProof)}
}

func (r *fakeProofRepo) CreateProof(proof *domain.DeliveryProof) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *proof
	r.proofs[proof.ID] = &copied
	return nil
}

func (r *fakeProofRepo) GetProofByID(proofID string) (*domain.DeliveryProof, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	proof, ok := r.proofs[proofID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *proof
	return &copied, nil
}

func (r *fakeProofRepo) GetProofByOrderID(orderID string) (*domain.DeliveryProof, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, proof := range r.proofs {
		if proof.OrderID == orderID {
			copied := *proof
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProofRepo) UpdateProof(proof *domain.DeliveryProof) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.proofs[proof.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *proof
	r.proofs[proof.ID] = &copied
	return nil
}

func (r *fakeProofRepo) ListProofs(status domain.VerificationStatus, page, limit int) ([]*domain.DeliveryProof, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.DeliveryProof
	for _, proof := range r.proofs {
		if status != "" && proof.VerificationStatus != status {
			continue
		}
		copied := *proof
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if status == domain.ProofPending {
			return result[i].UploadedAt.Before(result[j].UploadedAt)
		}
		return result[i].UploadedAt.After(result[j].UploadedAt)
	})
	return result, int64(len(result)), nil
}

type fakeStorage struct {
	mu    sync.Mutex
	count int
}

func (s *fakeStorage) StoreImage(ctx context.Context, data []byte, contentType string) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	id := fmt.Sprintf("img-%d", s.count)
	return id, "https://storage.test/" + id, nil
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
