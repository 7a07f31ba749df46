package importing

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/catalog"
	"github.com/prodsheet/backend/internal/domain/library"
	"github.com/prodsheet/backend/internal/domain/shared"
	"github.com/prodsheet/backend/internal/infrastructure/imagefetch"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Insert(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMaterialRepository is a mock implementation of library.MaterialRepository
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) FindAll(ctx context.Context) ([]library.MaterialItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]library.MaterialItem), args.Error(1)
}

func (m *MockMaterialRepository) FindByID(ctx context.Context, id string) (*library.MaterialItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.MaterialItem), args.Error(1)
}

func (m *MockMaterialRepository) Insert(ctx context.Context, item *library.MaterialItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMaterialRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockMaterialRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFactoryRepository is a mock implementation of catalog.FactoryRepository
type MockFactoryRepository struct {
	mock.Mock
}

func (m *MockFactoryRepository) FindAll(ctx context.Context) ([]catalog.Factory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Factory), args.Error(1)
}

func (m *MockFactoryRepository) Insert(ctx context.Context, factory *catalog.Factory) error {
	args := m.Called(ctx, factory)
	return args.Error(0)
}

func (m *MockFactoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFactoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// buildWorkbook serializes rows into xlsx bytes for upload tests
func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func newTestService(productRepo *MockProductRepository, leatherRepo *MockMaterialRepository, factoryRepo *MockFactoryRepository) *ImportService {
	return NewImportService(productRepo, leatherRepo, new(MockMaterialRepository), factoryRepo,
		imagefetch.New(2*time.Second), 10, 0, zap.NewNop())
}

func TestImportService_ImportProducts(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Item Code", "Description", "Category", "Height", "Depth", "Width"},
		{"CH-1001", "Oak chair", "chair", "95", "55", "48"},
		{"", "row without a code", "chair", "10", "10", "10"},
		{"TB-2002", "Walnut table", "table", "45", "60", "110"},
	})

	productRepo := new(MockProductRepository)
	service := newTestService(productRepo, new(MockMaterialRepository), new(MockFactoryRepository))

	var inserted []*catalog.Product
	productRepo.On("Insert", mock.Anything, mock.AnythingOfType("*catalog.Product")).
		Run(func(args mock.Arguments) {
			inserted = append(inserted, args.Get(1).(*catalog.Product))
		}).
		Return(nil)

	summary, err := service.Import(context.Background(), TargetProducts, "products.xlsx", data)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Skipped)
	assert.Empty(t, summary.Errors)
	assert.Len(t, summary.Sample, 2)

	require.Len(t, inserted, 2)
	assert.Equal(t, "CH-1001", inserted[0].Code)
	// no cbm column, so the volume is derived from the dimensions
	assert.Equal(t, 0.2508, inserted[0].CBM)
	assert.Equal(t, 0.297, inserted[1].CBM)
}

func TestImportService_ImportProductsKeepsSheetCBM(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Item Code", "Height", "Depth", "Width", "CBM"},
		{"CH-1001", "95", "55", "48", "0.9"},
	})

	productRepo := new(MockProductRepository)
	service := newTestService(productRepo, new(MockMaterialRepository), new(MockFactoryRepository))

	var inserted *catalog.Product
	productRepo.On("Insert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*catalog.Product)
		}).
		Return(nil)

	_, err := service.Import(context.Background(), TargetProducts, "products.xlsx", data)

	require.NoError(t, err)
	assert.Equal(t, 0.9, inserted.CBM)
}

func TestImportService_RowsCommitIndependently(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Code", "Name", "Color"},
		{"LTH-01", "Tan", "brown"},
		{"LTH-02", "Slate", "grey"},
	})

	leatherRepo := new(MockMaterialRepository)
	service := newTestService(new(MockProductRepository), leatherRepo, new(MockFactoryRepository))

	leatherRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item *library.MaterialItem) bool {
		return item.Code == "LTH-01"
	})).Return(shared.ErrAlreadyExists)
	leatherRepo.On("Insert", mock.Anything, mock.MatchedBy(func(item *library.MaterialItem) bool {
		return item.Code == "LTH-02"
	})).Return(nil)

	summary, err := service.Import(context.Background(), TargetLeather, "leather.xlsx", data)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "row 2")
}

func TestImportService_RejectsBadUploads(t *testing.T) {
	t.Run("wrong extension", func(t *testing.T) {
		service := newTestService(new(MockProductRepository), new(MockMaterialRepository), new(MockFactoryRepository))

		summary, err := service.Import(context.Background(), TargetProducts, "products.csv", []byte("a,b"))

		assert.Nil(t, summary)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_FILE", domainErr.Code)
	})

	t.Run("oversized file", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		service := NewImportService(productRepo, new(MockMaterialRepository), new(MockMaterialRepository),
			new(MockFactoryRepository), imagefetch.New(time.Second), 10, 4, zap.NewNop())

		summary, err := service.Import(context.Background(), TargetProducts, "products.xlsx", []byte("12345"))

		assert.Nil(t, summary)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FILE_TOO_LARGE", domainErr.Code)
	})

	t.Run("unknown target", func(t *testing.T) {
		data := buildWorkbook(t, [][]any{
			{"Code"},
			{"X-1"},
		})
		service := newTestService(new(MockProductRepository), new(MockMaterialRepository), new(MockFactoryRepository))

		summary, err := service.Import(context.Background(), "swatches", "any.xlsx", data)

		assert.Nil(t, summary)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TARGET", domainErr.Code)
	})
}

func TestImportService_HydratesRemoteImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("fake image bytes"))
	}))
	defer srv.Close()

	data := buildWorkbook(t, [][]any{
		{"Code", "Name", "Image"},
		{"LTH-01", "Tan", srv.URL + "/tan.png"},
		{"LTH-02", "Slate", "data:image/png;base64,AAAA"},
		{"LTH-03", "Moss", "http://127.0.0.1:1/unreachable.png"},
	})

	leatherRepo := new(MockMaterialRepository)
	service := newTestService(new(MockProductRepository), leatherRepo, new(MockFactoryRepository))

	var inserted []*library.MaterialItem
	leatherRepo.On("Insert", mock.Anything, mock.AnythingOfType("*library.MaterialItem")).
		Run(func(args mock.Arguments) {
			inserted = append(inserted, args.Get(1).(*library.MaterialItem))
		}).
		Return(nil)

	summary, err := service.Import(context.Background(), TargetLeather, "leather.xlsx", data)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Created)

	require.Len(t, inserted, 3)
	assert.True(t, strings.HasPrefix(inserted[0].Image, "data:image/png;base64,"))
	// data URLs pass through untouched, unreachable hosts degrade to none
	assert.Equal(t, "data:image/png;base64,AAAA", inserted[1].Image)
	assert.Empty(t, inserted[2].Image)
}

func TestImportService_FactoriesUppercaseCode(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Code", "Name"},
		{"sae", "Shekhawati Art Exports"},
	})

	factoryRepo := new(MockFactoryRepository)
	service := newTestService(new(MockProductRepository), new(MockMaterialRepository), factoryRepo)

	var inserted *catalog.Factory
	factoryRepo.On("Insert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*catalog.Factory)
		}).
		Return(nil)

	summary, err := service.Import(context.Background(), TargetFactories, "factories.xlsx", data)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, "SAE", inserted.Code)
}
