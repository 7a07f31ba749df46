package production

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]production.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]production.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*production.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.Order), args.Error(1)
}

func (m *MockOrderRepository) Insert(ctx context.Context, order *production.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, status production.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]production.Order, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]production.Order), args.Error(1)
}

func strptr(s string) *string { return &s }

func TestOrderService_Create(t *testing.T) {
	t.Run("successful creation fills defaults", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)

		var inserted *production.Order
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*production.Order")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(*production.Order)
			}).
			Return(nil)

		order, err := service.Create(context.Background(), CreateOrderRequest{
			SalesOrderRef: "SO-42",
			BuyerName:     "Acme",
			Items:         []OrderItemInput{{ProductCode: "CH-1"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, inserted, order)
		assert.NotEmpty(t, order.ID)
		assert.Equal(t, production.OrderStatusDraft, order.Status)
		assert.NotEmpty(t, order.CreatedAt)
		assert.Equal(t, order.CreatedAt, order.UpdatedAt)
		// items are normalized on the way in
		assert.NotEmpty(t, order.Items[0].ID)
		assert.Equal(t, 1, order.Items[0].Quantity)
		assert.True(t, order.Items[0].CBMAuto)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)

		order, err := service.Create(context.Background(), CreateOrderRequest{Status: "Shipped"})

		assert.Nil(t, order)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
		mockRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("explicit cbm_auto false is preserved", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)
		mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

		manual := false
		order, err := service.Create(context.Background(), CreateOrderRequest{
			Items: []OrderItemInput{{ProductCode: "TB-1", CBM: 0.5, CBMAuto: &manual}},
		})

		assert.NoError(t, err)
		assert.False(t, order.Items[0].CBMAuto)
		assert.Equal(t, 0.5, order.Items[0].Volume())
	})
}

func TestOrderService_Update(t *testing.T) {
	t.Run("only provided fields reach the patch", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)

		var fields map[string]any
		mockRepo.On("UpdateFields", mock.Anything, "order-1", mock.Anything).
			Run(func(args mock.Arguments) {
				fields = args.Get(2).(map[string]any)
			}).
			Return(nil)
		stored := &production.Order{ID: "order-1", BuyerName: "Acme"}
		mockRepo.On("FindByID", mock.Anything, "order-1").Return(stored, nil)

		order, err := service.Update(context.Background(), "order-1", UpdateOrderRequest{
			BuyerName: strptr("Acme"),
			Status:    strptr("Done"),
		})

		assert.NoError(t, err)
		assert.Equal(t, stored, order)
		assert.Equal(t, "Acme", fields["buyer_name"])
		assert.Equal(t, "Done", fields["status"])
		assert.Contains(t, fields, "updated_at")
		assert.NotContains(t, fields, "sales_order_ref")
		assert.NotContains(t, fields, "items")
		mockRepo.AssertExpectations(t)
	})

	t.Run("replacement items are normalized", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)

		var fields map[string]any
		mockRepo.On("UpdateFields", mock.Anything, "order-1", mock.Anything).
			Run(func(args mock.Arguments) {
				fields = args.Get(2).(map[string]any)
			}).
			Return(nil)
		mockRepo.On("FindByID", mock.Anything, "order-1").Return(&production.Order{ID: "order-1"}, nil)

		items := []OrderItemInput{{ProductCode: "ST-9"}}
		_, err := service.Update(context.Background(), "order-1", UpdateOrderRequest{Items: &items})

		assert.NoError(t, err)
		replaced := fields["items"].([]production.OrderItem)
		assert.Len(t, replaced, 1)
		assert.NotEmpty(t, replaced[0].ID)
		assert.Equal(t, 1, replaced[0].Quantity)
	})

	t.Run("unknown status short-circuits", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)

		order, err := service.Update(context.Background(), "order-1", UpdateOrderRequest{
			Status: strptr("Lost"),
		})

		assert.Nil(t, order)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATUS", domainErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateFields")
	})

	t.Run("missing order propagates not found", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo)
		mockRepo.On("UpdateFields", mock.Anything, "gone", mock.Anything).Return(shared.ErrNotFound)

		order, err := service.Update(context.Background(), "gone", UpdateOrderRequest{BuyerName: strptr("X")})

		assert.Nil(t, order)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrderService_DashboardStats(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := NewOrderService(mockRepo)

	mockRepo.On("CountByStatus", mock.Anything, production.OrderStatus("")).Return(int64(12), nil)
	mockRepo.On("CountByStatus", mock.Anything, production.OrderStatusDraft).Return(int64(3), nil)
	mockRepo.On("CountByStatus", mock.Anything, production.OrderStatusInProduction).Return(int64(4), nil)
	mockRepo.On("CountByStatus", mock.Anything, production.OrderStatusDone).Return(int64(5), nil)
	recent := []production.Order{{ID: "o-1"}, {ID: "o-2"}}
	mockRepo.On("FindRecent", mock.Anything, 5).Return(recent, nil)

	stats, err := service.DashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.DraftOrders)
	assert.Equal(t, int64(4), stats.InProduction)
	assert.Equal(t, int64(5), stats.Completed)
	assert.Equal(t, recent, stats.RecentOrders)
	mockRepo.AssertExpectations(t)
}
