package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

// CreateOrder allocates the day-scoped order number and inserts the order and
// its items in one transaction. The upsert-returning statement makes the
// sequence allocation safe under concurrent creation on the same day; a
// count-then-insert would hand out duplicates.
func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		day := order.CreatedAt.Format("060102")

		var counter int64
		err := tx.Raw(`
			INSERT INTO order_day_sequence_models (day, counter) VALUES (?, 1)
			ON CONFLICT (day) DO UPDATE SET counter = order_day_sequence_models.counter + 1
			RETURNING counter`, day).Scan(&counter).Error
		if err != nil {
			return fmt.Errorf("allocate order number: %w", err)
		}

		order.OrderNumber = fmt.Sprintf("ORD-%s-%04d", day, counter)

		orderModel := mappers.ToGORMOrder(order)
		if err := tx.Create(orderModel).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Items").First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderNumber, domain.ErrNotFound)
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

// UpdateOrderStatus is a compare-and-set on the status column. A concurrent
// transition that already moved the order away from oldStatus makes this a
// state conflict, not a silent overwrite.
func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, oldStatus, newStatus domain.OrderStatus) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, oldStatus).
		Update("status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s is not %s: %w", orderID, oldStatus, domain.ErrStateConflict)
	}
	return nil
}

func (r *DefaultOrderRepository) AttachTracking(orderID string, trackingNumber string) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("tracking_number", trackingNumber)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

func (r *DefaultOrderRepository) SetProofID(orderID string, proofID string) error {
	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("proof_id", proofID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

func (r *DefaultOrderRepository) ListOrders(
	filters domain.OrderFilters,
	page, limit int,
	sortBy, sortOrder string,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	safeSortBy := "order_models.created_at"
	switch sortBy {
	case "total":
		safeSortBy = "order_models.total"
	case "order_number":
		safeSortBy = "order_models.order_number"
	case "created_at":
		safeSortBy = "order_models.created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := r.DB.Model(&models.OrderModel{}).Preload("Items")

	if filters.Status != "" {
		baseQuery = baseQuery.Where("order_models.status = ?", filters.Status)
	}
	if filters.CustomerID != "" {
		baseQuery = baseQuery.Where("order_models.customer_id = ?", filters.CustomerID)
	}
	if filters.VendorID != "" {
		baseQuery = baseQuery.
			Joins("JOIN order_item_models ON order_item_models.order_id = order_models.id").
			Where("order_item_models.vendor_id = ?", filters.VendorID).
			Distinct("order_models.*")
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("order_models.created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("order_models.created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	err := baseQuery.
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) FindUnreleasedDelivered() ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.Preload("Items").
		Where("status = ?", domain.StatusDelivered).
		Where("escrow_status = ?", domain.EscrowHeld).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}
