// Package quotation holds the quotation application service. Totals are
// caller-supplied; the service never recomputes them.
package quotation

import (
	"context"

	"github.com/prodsheet/backend/internal/domain/production"
	"github.com/prodsheet/backend/internal/domain/quotation"
)

// QuotationItemInput is one priced line of a quotation request
type QuotationItemInput struct {
	ID          string  `json:"id"`
	ProductCode string  `json:"product_code"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CBM         float64 `json:"cbm"`
	Amount      float64 `json:"amount"`
}

// CreateQuotationRequest creates a new quotation
type CreateQuotationRequest struct {
	QuoteRef    string               `json:"quote_ref"`
	BuyerName   string               `json:"buyer_name"`
	Status      string               `json:"status"`
	Items       []QuotationItemInput `json:"items"`
	ItemsCount  int                  `json:"items_count"`
	TotalVolume float64              `json:"total_volume"`
	TotalValue  float64              `json:"total_value"`
}

// UpdateQuotationRequest is a merge-patch: only non-nil fields overwrite
type UpdateQuotationRequest struct {
	QuoteRef    *string               `json:"quote_ref"`
	BuyerName   *string               `json:"buyer_name"`
	Status      *string               `json:"status"`
	Items       *[]QuotationItemInput `json:"items"`
	ItemsCount  *int                  `json:"items_count"`
	TotalVolume *float64              `json:"total_volume"`
	TotalValue  *float64              `json:"total_value"`
}

func toDomainItems(inputs []QuotationItemInput) []quotation.QuotationItem {
	items := make([]quotation.QuotationItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, quotation.QuotationItem{
			ID:          in.ID,
			ProductCode: in.ProductCode,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			CBM:         in.CBM,
			Amount:      in.Amount,
		})
	}
	return items
}

// QuotationService handles quotation operations
type QuotationService struct {
	repo quotation.QuotationRepository
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(repo quotation.QuotationRepository) *QuotationService {
	return &QuotationService{repo: repo}
}

// List returns all quotations
func (s *QuotationService) List(ctx context.Context) ([]quotation.Quotation, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns one quotation
func (s *QuotationService) GetByID(ctx context.Context, id string) (*quotation.Quotation, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new quotation
func (s *QuotationService) Create(ctx context.Context, req CreateQuotationRequest) (*quotation.Quotation, error) {
	q := quotation.NewQuotation(req.QuoteRef, req.BuyerName, req.Status,
		toDomainItems(req.Items), req.ItemsCount, req.TotalVolume, req.TotalValue)
	if err := s.repo.Insert(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Update applies a merge-patch to a quotation
func (s *QuotationService) Update(ctx context.Context, id string, req UpdateQuotationRequest) (*quotation.Quotation, error) {
	fields := map[string]any{}
	if req.QuoteRef != nil {
		fields["quote_ref"] = *req.QuoteRef
	}
	if req.BuyerName != nil {
		fields["buyer_name"] = *req.BuyerName
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Items != nil {
		fields["items"] = toDomainItems(*req.Items)
	}
	if req.ItemsCount != nil {
		fields["items_count"] = *req.ItemsCount
	}
	if req.TotalVolume != nil {
		fields["total_volume"] = *req.TotalVolume
	}
	if req.TotalValue != nil {
		fields["total_value"] = *req.TotalValue
	}
	fields["updated_at"] = production.Now()

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes a quotation
func (s *QuotationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Duplicate deep-copies a quotation under a fresh id with a " (Copy)"
// suffix on its reference.
func (s *QuotationService) Duplicate(ctx context.Context, id string) (*quotation.Quotation, error) {
	original, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	duplicate := original.Duplicate()
	if err := s.repo.Insert(ctx, duplicate); err != nil {
		return nil, err
	}
	return duplicate, nil
}
