package library

import "context"

// MaterialRepository defines persistence operations for a swatch library.
// One implementation exists per collection (leather_library,
// finish_library); the document shape is identical.
type MaterialRepository interface {
	FindAll(ctx context.Context) ([]MaterialItem, error)
	FindByID(ctx context.Context, id string) (*MaterialItem, error)
	Insert(ctx context.Context, item *MaterialItem) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
