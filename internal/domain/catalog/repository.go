package catalog

import "context"

// FactoryRepository defines persistence operations for factories
type FactoryRepository interface {
	FindAll(ctx context.Context) ([]Factory, error)
	Insert(ctx context.Context, factory *Factory) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	Insert(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ProductRepository defines persistence operations for catalog products
type ProductRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Insert(ctx context.Context, product *Product) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
