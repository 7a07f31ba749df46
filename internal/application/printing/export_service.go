package printing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/rendering"
)

// PDFRenderer renders an order snapshot into PDF bytes
type PDFRenderer interface {
	Render(order *production.Order, settings *rendering.TemplateSettings, logo []byte) ([]byte, error)
}

// DeckRenderer renders an order snapshot into slide deck bytes
type DeckRenderer interface {
	Render(order *production.Order, settings *rendering.TemplateSettings) ([]byte, error)
}

// HTMLPreviewer renders an order snapshot into preview HTML
type HTMLPreviewer func(order *production.Order, settings *rendering.TemplateSettings) (string, error)

// ExportService orchestrates renders: fetch the order and settings
// snapshots, run the renderer, then append a ledger entry.
type ExportService struct {
	orderRepo  production.OrderRepository
	settings   *SettingsService
	exportRepo rendering.ExportRepository
	pdf        PDFRenderer
	deck       DeckRenderer
	preview    HTMLPreviewer
	logo       []byte
	logger     *zap.Logger
}

// NewExportService creates a new ExportService. logo may be nil; the
// renderer then falls back to the settings logo text.
func NewExportService(
	orderRepo production.OrderRepository,
	settings *SettingsService,
	exportRepo rendering.ExportRepository,
	pdf PDFRenderer,
	deck DeckRenderer,
	preview HTMLPreviewer,
	logo []byte,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		orderRepo:  orderRepo,
		settings:   settings,
		exportRepo: exportRepo,
		pdf:        pdf,
		deck:       deck,
		preview:    preview,
		logo:       logo,
		logger:     logger,
	}
}

// Filename derives the download name from the sales reference, falling
// back to the order id.
func Filename(order *production.Order, exportType rendering.ExportType) string {
	ref := order.SalesOrderRef
	if ref == "" {
		ref = order.ID
	}
	ext := "pdf"
	if exportType == rendering.ExportTypePPT {
		ext = "pptx"
	}
	return fmt.Sprintf("order_%s.%s", ref, ext)
}

// ExportPDF renders an order as PDF and appends a ledger entry
func (s *ExportService) ExportPDF(ctx context.Context, orderID string) (string, []byte, error) {
	return s.export(ctx, orderID, rendering.ExportTypePDF)
}

// ExportDeck renders an order as a slide deck and appends a ledger entry
func (s *ExportService) ExportDeck(ctx context.Context, orderID string) (string, []byte, error) {
	return s.export(ctx, orderID, rendering.ExportTypePPT)
}

func (s *ExportService) export(ctx context.Context, orderID string, exportType rendering.ExportType) (string, []byte, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return "", nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", nil, err
	}

	var data []byte
	switch exportType {
	case rendering.ExportTypePPT:
		data, err = s.deck.Render(order, settings)
	default:
		data, err = s.pdf.Render(order, settings, s.logo)
	}
	if err != nil {
		return "", nil, err
	}

	filename := Filename(order, exportType)
	record := rendering.NewExportRecord(orderID, exportType, filename)
	if err := s.exportRepo.Insert(ctx, record); err != nil {
		return "", nil, err
	}
	if s.logger != nil {
		s.logger.Info("order exported",
			zap.String("order_id", orderID),
			zap.String("type", string(exportType)),
			zap.String("filename", filename),
			zap.Int("bytes", len(data)))
	}
	return filename, data, nil
}

// PreviewHTML renders the on-screen preview. Previews are not recorded
// in the export ledger.
func (s *ExportService) PreviewHTML(ctx context.Context, orderID string) (string, *production.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return "", nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", nil, err
	}
	html, err := s.preview(order, settings)
	if err != nil {
		return "", nil, err
	}
	return html, order, nil
}

// History returns the full export ledger, newest first
func (s *ExportService) History(ctx context.Context) ([]rendering.ExportRecord, error) {
	return s.exportRepo.FindAll(ctx)
}

// HistoryForOrder returns the ledger entries for one order
func (s *ExportService) HistoryForOrder(ctx context.Context, orderID string) ([]rendering.ExportRecord, error) {
	return s.exportRepo.FindByOrderID(ctx, orderID)
}
