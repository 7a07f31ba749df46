package quotation

import "context"

// QuotationRepository defines persistence operations for quotations
type QuotationRepository interface {
	FindAll(ctx context.Context) ([]Quotation, error)
	FindByID(ctx context.Context, id string) (*Quotation, error)
	Insert(ctx context.Context, quotation *Quotation) error
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
