package printing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/rendering"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// MockOrderRepository is a mock implementation of production.OrderRepository
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

// MockSettingsRepository is a mock implementation of rendering.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Find(ctx context.Context) (*rendering.TemplateSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rendering.TemplateSettings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *rendering.TemplateSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockExportRepository is a mock implementation of rendering.ExportRepository
type MockExportRepository struct {
	mock.Mock
}

func (m *MockExportRepository) Insert(ctx context.Context, record *rendering.ExportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockExportRepository) FindAll(ctx context.Context) ([]rendering.ExportRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]rendering.ExportRecord), args.Error(1)
}

func (m *MockExportRepository) FindByOrderID(ctx context.Context, orderID string) ([]rendering.ExportRecord, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]rendering.ExportRecord), args.Error(1)
}

// stubRenderer satisfies both renderer interfaces with fixed bytes
type stubRenderer struct {
	data []byte
	err  error
}

func (r stubRenderer) Render(order *production.Order, settings *rendering.TemplateSettings, logo []byte) ([]byte, error) {
	return r.data, r.err
}

type stubDeckRenderer stubRenderer

func (r stubDeckRenderer) Render(order *production.Order, settings *rendering.TemplateSettings) ([]byte, error) {
	return r.data, r.err
}

func stubPreview(html string) HTMLPreviewer {
	return func(order *production.Order, settings *rendering.TemplateSettings) (string, error) {
		return html, nil
	}
}

func TestFilename(t *testing.T) {
	order := &production.Order{ID: "abc-123", SalesOrderRef: "SO-2024-001"}
	assert.Equal(t, "order_SO-2024-001.pdf", Filename(order, rendering.ExportTypePDF))
	assert.Equal(t, "order_SO-2024-001.pptx", Filename(order, rendering.ExportTypePPT))

	// no sales reference falls back to the id
	noRef := &production.Order{ID: "abc-123"}
	assert.Equal(t, "order_abc-123.pdf", Filename(noRef, rendering.ExportTypePDF))
}

func TestExportService_ExportPDF(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	settingsRepo := new(MockSettingsRepository)
	exportRepo := new(MockExportRepository)
	service := NewExportService(orderRepo, NewSettingsService(settingsRepo), exportRepo,
		stubRenderer{data: []byte("%PDF-1.4")}, stubDeckRenderer{}, stubPreview(""), nil, zap.NewNop())

	order := &production.Order{ID: "o-1", SalesOrderRef: "SO-9"}
	orderRepo.On("FindByID", mock.Anything, "o-1").Return(order, nil)
	settingsRepo.On("Find", mock.Anything).Return(rendering.DefaultTemplateSettings(), nil)

	var recorded *rendering.ExportRecord
	exportRepo.On("Insert", mock.Anything, mock.AnythingOfType("*rendering.ExportRecord")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*rendering.ExportRecord)
		}).
		Return(nil)

	filename, data, err := service.ExportPDF(context.Background(), "o-1")

	require.NoError(t, err)
	assert.Equal(t, "order_SO-9.pdf", filename)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	require.NotNil(t, recorded)
	assert.Equal(t, "o-1", recorded.OrderID)
	assert.Equal(t, rendering.ExportTypePDF, recorded.ExportType)
	assert.Equal(t, "order_SO-9.pdf", recorded.Filename)
	assert.NotEmpty(t, recorded.ID)
	assert.NotEmpty(t, recorded.CreatedAt)
}

func TestExportService_ExportDeck(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	settingsRepo := new(MockSettingsRepository)
	exportRepo := new(MockExportRepository)
	service := NewExportService(orderRepo, NewSettingsService(settingsRepo), exportRepo,
		stubRenderer{}, stubDeckRenderer{data: []byte("PK deck")}, stubPreview(""), nil, zap.NewNop())

	orderRepo.On("FindByID", mock.Anything, "o-1").Return(&production.Order{ID: "o-1"}, nil)
	settingsRepo.On("Find", mock.Anything).Return(rendering.DefaultTemplateSettings(), nil)
	exportRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	filename, data, err := service.ExportDeck(context.Background(), "o-1")

	require.NoError(t, err)
	assert.Equal(t, "order_o-1.pptx", filename)
	assert.Equal(t, []byte("PK deck"), data)
}

func TestExportService_ExportMissingOrder(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	exportRepo := new(MockExportRepository)
	service := NewExportService(orderRepo, NewSettingsService(new(MockSettingsRepository)), exportRepo,
		stubRenderer{}, stubDeckRenderer{}, stubPreview(""), nil, zap.NewNop())

	orderRepo.On("FindByID", mock.Anything, "gone").Return(nil, shared.ErrNotFound)

	_, _, err := service.ExportPDF(context.Background(), "gone")

	assert.ErrorIs(t, err, shared.ErrNotFound)
	exportRepo.AssertNotCalled(t, "Insert")
}

func TestExportService_PreviewDoesNotTouchLedger(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	settingsRepo := new(MockSettingsRepository)
	exportRepo := new(MockExportRepository)
	service := NewExportService(orderRepo, NewSettingsService(settingsRepo), exportRepo,
		stubRenderer{}, stubDeckRenderer{}, stubPreview("<html>ok</html>"), nil, zap.NewNop())

	order := &production.Order{ID: "o-1"}
	orderRepo.On("FindByID", mock.Anything, "o-1").Return(order, nil)
	settingsRepo.On("Find", mock.Anything).Return(rendering.DefaultTemplateSettings(), nil)

	html, echoed, err := service.PreviewHTML(context.Background(), "o-1")

	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", html)
	assert.Equal(t, order, echoed)
	exportRepo.AssertNotCalled(t, "Insert")
}

func TestSettingsService_GetSeedsDefaults(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	service := NewSettingsService(settingsRepo)

	settingsRepo.On("Find", mock.Anything).Return(nil, shared.ErrNotFound)
	settingsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*rendering.TemplateSettings")).Return(nil)

	settings, err := service.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rendering.SettingsID, settings.ID)
	assert.Equal(t, "JAIPUR", settings.LogoText)
	settingsRepo.AssertExpectations(t)
}

func TestSettingsService_UpdateForcesSingletonID(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	service := NewSettingsService(settingsRepo)
	settingsRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	updated, err := service.Update(context.Background(), &rendering.TemplateSettings{ID: "rogue", LogoText: "ACME"})

	require.NoError(t, err)
	assert.Equal(t, rendering.SettingsID, updated.ID)
	assert.Equal(t, "ACME", updated.LogoText)
}
