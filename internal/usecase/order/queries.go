package order

import (
	"fmt"

	"github.com/vendaro/vendaro-settlement-service/internal/domain"
	orderdto "github.com/vendaro/vendaro-settlement-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(actorID string, actorRole domain.Role, orderID string) (*orderdto.OrderOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if err := authorizeRead(order, actorID, actorRole); err != nil {
		return nil, err
	}
	return &orderdto.OrderOutput{
		Order:  *order,
		Escrow: orderdto.Snapshot(order),
	}, nil
}

func (uc *DefaultOrderUsecase) GetOrderByNumber(actorID string, actorRole domain.Role, orderNumber string) (*orderdto.OrderOutput, error) {
	order, err := uc.OrderRepo.GetOrderByNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if err := authorizeRead(order, actorID, actorRole); err != nil {
		return nil, err
	}
	return &orderdto.OrderOutput{
		Order:  *order,
		Escrow: orderdto.Snapshot(order),
	}, nil
}

// ListOrders scopes the result set to the caller: customers see their own
// orders, vendors the orders containing their items, admins everything.
func (uc *DefaultOrderUsecase) ListOrders(input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error) {
	filters := input.Filters
	switch input.ActorRole {
	case domain.RoleCustomer:
		filters.CustomerID = input.ActorID
	case domain.RoleVendor:
		filters.VendorID = input.ActorID
	case domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, input.ActorRole)
	}

	page, limit := input.Page, input.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := uc.OrderRepo.ListOrders(filters, page, limit, input.SortBy, input.SortOrder)
	if err != nil {
		return nil, err
	}
	return &orderdto.ListOrdersOutput{Orders: orders, Total: total}, nil
}

func authorizeRead(order *domain.Order, actorID string, actorRole domain.Role) error {
	switch actorRole {
	case domain.RoleAdmin:
		return nil
	case domain.RoleCustomer:
		if order.CustomerID == actorID {
			return nil
		}
	case domain.RoleVendor:
		if _, ok := order.VendorShares()[actorID]; ok {
			return nil
		}
	}
	return fmt.Errorf("%w: no access to this order", domain.ErrUnauthorized)
}
