package rendering

import "context"

// SettingsRepository defines persistence operations for the singleton
// template settings document.
type SettingsRepository interface {
	// Find returns the settings document or shared.ErrNotFound
	Find(ctx context.Context) (*TemplateSettings, error)
	// Upsert stores the settings document, inserting it when absent
	Upsert(ctx context.Context, settings *TemplateSettings) error
}

// ExportRepository defines persistence operations for the export ledger
type ExportRepository interface {
	Insert(ctx context.Context, record *ExportRecord) error
	FindAll(ctx context.Context) ([]ExportRecord, error)
	FindByOrderID(ctx context.Context, orderID string) ([]ExportRecord, error)
}
