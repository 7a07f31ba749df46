// Package production holds the order application services: CRUD with
// merge-patch updates, and the dashboard aggregates.
package production

import (
	"context"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// recentOrderCount is how many orders the dashboard shows
const recentOrderCount = 5

// OrderService handles order business operations
type OrderService struct {
	orderRepo production.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo production.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// List returns all orders
func (s *OrderService) List(ctx context.Context) ([]production.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// GetByID returns one order
func (s *OrderService) GetByID(ctx context.Context, id string) (*production.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// Create persists a new order with a server-generated id and timestamps
// and echoes back the stored representation.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*production.Order, error) {
	status := production.OrderStatus(req.Status)
	if req.Status != "" && !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	items := make([]production.OrderItem, 0, len(req.Items))
	for _, in := range req.Items {
		items = append(items, in.ToDomain())
	}

	order := production.NewOrder(req.SalesOrderRef, req.BuyerPORef, req.BuyerName,
		req.EntryDate, req.InformDate, status, req.Factory, items)
	if err := s.orderRepo.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update applies a merge-patch: only fields present in the request
// overwrite stored values, and updated_at is always refreshed.
func (s *OrderService) Update(ctx context.Context, id string, req UpdateOrderRequest) (*production.Order, error) {
	fields := map[string]any{}
	if req.SalesOrderRef != nil {
		fields["sales_order_ref"] = *req.SalesOrderRef
	}
	if req.BuyerPORef != nil {
		fields["buyer_po_ref"] = *req.BuyerPORef
	}
	if req.BuyerName != nil {
		fields["buyer_name"] = *req.BuyerName
	}
	if req.EntryDate != nil {
		fields["entry_date"] = *req.EntryDate
	}
	if req.InformDate != nil {
		fields["inform_date"] = *req.InformDate
	}
	if req.Status != nil {
		status := production.OrderStatus(*req.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		fields["status"] = *req.Status
	}
	if req.Factory != nil {
		fields["factory"] = *req.Factory
	}
	if req.Items != nil {
		items := make([]production.OrderItem, 0, len(*req.Items))
		for _, in := range *req.Items {
			items = append(items, in.ToDomain())
		}
		fields["items"] = items
	}
	fields["updated_at"] = production.Now()

	if err := s.orderRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, id)
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}

// DashboardStats aggregates order counts by status plus the most
// recently created orders.
func (s *OrderService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	total, err := s.orderRepo.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	draft, err := s.orderRepo.CountByStatus(ctx, production.OrderStatusDraft)
	if err != nil {
		return nil, err
	}
	inProduction, err := s.orderRepo.CountByStatus(ctx, production.OrderStatusInProduction)
	if err != nil {
		return nil, err
	}
	done, err := s.orderRepo.CountByStatus(ctx, production.OrderStatusDone)
	if err != nil {
		return nil, err
	}
	recent, err := s.orderRepo.FindRecent(ctx, recentOrderCount)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalOrders:  total,
		DraftOrders:  draft,
		InProduction: inProduction,
		Completed:    done,
		RecentOrders: recent,
	}, nil
}
