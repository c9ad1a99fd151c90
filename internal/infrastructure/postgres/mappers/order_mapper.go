package mappers

import (
	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	"github.com/vendaro/vendaro-settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			VendorID:  item.VendorID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &domain.Order{
		ID:                model.ID,
		OrderNumber:       model.OrderNumber,
		CustomerID:        model.CustomerID,
		Items:             items,
		Status:            model.Status,
		PaymentStatus:     model.PaymentStatus,
		EscrowStatus:      model.EscrowStatus,
		EscrowAmount:      model.EscrowAmount,
		EscrowReleaseDate: model.EscrowReleaseDate,
		PendingCredited:   model.PendingCredited,
		ProofID:           model.ProofID,
		Subtotal:          model.Subtotal,
		Shipping:          model.Shipping,
		Tax:               model.Tax,
		Total:             model.Total,
		ShippingMethod:    domain.ShippingMethod(model.ShippingMethod),
		TrackingNumber:    model.TrackingNumber,
		EstimatedDelivery: model.EstimatedDelivery,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.OrderItemModel{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			VendorID:  item.VendorID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return &models.OrderModel{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		CustomerID:        order.CustomerID,
		Items:             items,
		Status:            order.Status,
		PaymentStatus:     order.PaymentStatus,
		EscrowStatus:      order.EscrowStatus,
		EscrowAmount:      order.EscrowAmount,
		EscrowReleaseDate: order.EscrowReleaseDate,
		PendingCredited:   order.PendingCredited,
		ProofID:           order.ProofID,
		Subtotal:          order.Subtotal,
		Shipping:          order.Shipping,
		Tax:               order.Tax,
		Total:             order.Total,
		ShippingMethod:    string(order.ShippingMethod),
		TrackingNumber:    order.TrackingNumber,
		EstimatedDelivery: order.EstimatedDelivery,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
