// Package importing turns uploaded spreadsheets into catalog and
// library records. Rows commit independently; a bad row is reported in
// the summary, never rolled back with the rest of the batch.
package importing

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/catalog"
	"github.com/prodsheet/backend/internal/domain/library"
	"github.com/prodsheet/backend/internal/domain/shared"
	"github.com/prodsheet/backend/internal/infrastructure/imagefetch"
	xlsximport "github.com/prodsheet/backend/internal/infrastructure/import"
)

// Import targets
const (
	TargetProducts  = "products"
	TargetLeather   = "leather"
	TargetFinish    = "finish"
	TargetFactories = "factories"
)

// sampleLimit caps the echoed sample of created records
const sampleLimit = 5

// Summary reports the outcome of one upload
type Summary struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
	Sample  []any    `json:"sample"`
}

// ImportService parses uploads and commits rows per target collection
type ImportService struct {
	productRepo catalog.ProductRepository
	leatherRepo library.MaterialRepository
	finishRepo  library.MaterialRepository
	factoryRepo catalog.FactoryRepository
	fetcher     *imagefetch.Fetcher
	maxErrors   int
	maxFileSize int64
	logger      *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(
	productRepo catalog.ProductRepository,
	leatherRepo library.MaterialRepository,
	finishRepo library.MaterialRepository,
	factoryRepo catalog.FactoryRepository,
	fetcher *imagefetch.Fetcher,
	maxErrors int,
	maxFileSize int64,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		productRepo: productRepo,
		leatherRepo: leatherRepo,
		finishRepo:  finishRepo,
		factoryRepo: factoryRepo,
		fetcher:     fetcher,
		maxErrors:   maxErrors,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Import parses an uploaded workbook and commits its rows to the target
// collection. Each row is committed independently.
func (s *ImportService) Import(ctx context.Context, target, filename string, data []byte) (*Summary, error) {
	if !xlsximport.ValidExtension(filename) {
		return nil, shared.NewDomainError("INVALID_FILE",
			"Unsupported file format, expected .xlsx, .xlsm, .xltx or .xltm")
	}
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "Uploaded file exceeds the maximum allowed size")
	}

	parser, err := xlsximport.NewParser(bytes.NewReader(data))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FILE", err.Error())
	}

	summary := &Summary{Errors: []string{}, Sample: []any{}}
	errs := xlsximport.NewErrorCollection(s.maxErrors)

	for _, row := range parser.Rows() {
		code := strings.TrimSpace(row.Get(xlsximport.FieldCode))
		if code == "" {
			summary.Skipped++
			continue
		}

		var created any
		var rowErr error
		switch target {
		case TargetProducts:
			created, rowErr = s.importProduct(ctx, parser, row)
		case TargetLeather:
			created, rowErr = s.importMaterial(ctx, s.leatherRepo, row)
		case TargetFinish:
			created, rowErr = s.importMaterial(ctx, s.finishRepo, row)
		case TargetFactories:
			created, rowErr = s.importFactory(ctx, row)
		default:
			return nil, shared.NewDomainError("INVALID_TARGET", fmt.Sprintf("Unknown import target %q", target))
		}

		if rowErr != nil {
			errs.Add(xlsximport.NewRowError(row.Line, "", xlsximport.ErrCodeImportPersistence, rowErr.Error()))
			continue
		}
		summary.Created++
		if len(summary.Sample) < sampleLimit {
			summary.Sample = append(summary.Sample, created)
		}
	}

	summary.Errors = errs.Messages()
	if s.logger != nil {
		s.logger.Info("import completed",
			zap.String("target", target),
			zap.Int("created", summary.Created),
			zap.Int("skipped", summary.Skipped),
			zap.Int("errors", errs.TotalCount()))
	}
	return summary, nil
}

func (s *ImportService) importProduct(ctx context.Context, parser *xlsximport.Parser, row xlsximport.Row) (any, error) {
	h := row.Float(xlsximport.FieldHeightCM)
	d := row.Float(xlsximport.FieldDepthCM)
	w := row.Float(xlsximport.FieldWidthCM)

	cbm := row.Float(xlsximport.FieldCBM)
	if !parser.HasColumn(xlsximport.FieldCBM) {
		cbm = math.Round(h*d*w/1_000_000*10000) / 10000
	}

	product := catalog.NewProduct(
		row.Get(xlsximport.FieldCode),
		row.Get(xlsximport.FieldDescription),
		row.Get(xlsximport.FieldCategory),
		h, d, w, cbm,
		s.hydrateImage(ctx, row.Get(xlsximport.FieldImage)),
	)
	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ImportService) importMaterial(ctx context.Context, repo library.MaterialRepository, row xlsximport.Row) (any, error) {
	item := library.NewMaterialItem(
		row.Get(xlsximport.FieldCode),
		row.Get(xlsximport.FieldName),
		row.Get(xlsximport.FieldDescription),
		row.Get(xlsximport.FieldColor),
		s.hydrateImage(ctx, row.Get(xlsximport.FieldImage)),
	)
	if err := repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ImportService) importFactory(ctx context.Context, row xlsximport.Row) (any, error) {
	factory := catalog.NewFactory(
		strings.ToUpper(strings.TrimSpace(row.Get(xlsximport.FieldCode))),
		row.Get(xlsximport.FieldName),
	)
	if err := s.factoryRepo.Insert(ctx, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

// hydrateImage fetches an http(s) image reference and embeds it as a
// data URL. Any failure yields an empty image, never a row failure.
func (s *ImportService) hydrateImage(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "data:image/") {
		return ref
	}
	if dataURL, ok := s.fetcher.FetchDataURL(ctx, ref); ok {
		return dataURL
	}
	if s.logger != nil {
		s.logger.Debug("image fetch failed, importing row without image", zap.String("url", ref))
	}
	return ""
}
