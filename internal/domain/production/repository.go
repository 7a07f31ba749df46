package production

import "context"

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	// FindAll returns all orders, capped defensively
	FindAll(ctx context.Context) ([]Order, error)
	// FindByID returns one order or shared.ErrNotFound
	FindByID(ctx context.Context, id string) (*Order, error)
	// Insert persists a new order
	Insert(ctx context.Context, order *Order) error
	// UpdateFields applies a merge-patch: only the given fields are
	// overwritten. Returns shared.ErrNotFound when the id does not exist.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// Delete removes an order, shared.ErrNotFound when nothing matched
	Delete(ctx context.Context, id string) error
	// CountByStatus counts orders with the given status; an empty status
	// counts all orders
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)
	// FindRecent returns the most recently created orders, newest first
	FindRecent(ctx context.Context, limit int) ([]Order, error)
}
