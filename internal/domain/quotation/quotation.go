// Package quotation holds buyer quotations. Quotation totals (item
// count, total volume, total value) are caller-supplied and never
// recomputed server-side.
package quotation

import (
	"github.com/google/uuid"

	"github.com/prodsheet/backend/internal/domain/production"
)

// QuotationItem is one priced line in a quotation
type QuotationItem struct {
	ID          string  `bson:"id" json:"id"`
	ProductCode string  `bson:"product_code" json:"product_code"`
	Description string  `bson:"description" json:"description"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	UnitPrice   float64 `bson:"unit_price" json:"unit_price"`
	CBM         float64 `bson:"cbm" json:"cbm"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// Quotation is a priced offer for a buyer
type Quotation struct {
	ID          string          `bson:"id" json:"id"`
	QuoteRef    string          `bson:"quote_ref" json:"quote_ref"`
	BuyerName   string          `bson:"buyer_name" json:"buyer_name"`
	Status      string          `bson:"status" json:"status"`
	Items       []QuotationItem `bson:"items" json:"items"`
	ItemsCount  int             `bson:"items_count" json:"items_count"`
	TotalVolume float64         `bson:"total_volume" json:"total_volume"`
	TotalValue  float64         `bson:"total_value" json:"total_value"`
	CreatedAt   string          `bson:"created_at" json:"created_at"`
	UpdatedAt   string          `bson:"updated_at" json:"updated_at"`
}

// NewQuotation creates a quotation with a server-generated id and timestamps
func NewQuotation(quoteRef, buyerName, status string, items []QuotationItem, itemsCount int, totalVolume, totalValue float64) *Quotation {
	if items == nil {
		items = []QuotationItem{}
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
	now := production.Now()
	return &Quotation{
		ID:          uuid.NewString(),
		QuoteRef:    quoteRef,
		BuyerName:   buyerName,
		Status:      status,
		Items:       items,
		ItemsCount:  itemsCount,
		TotalVolume: totalVolume,
		TotalValue:  totalValue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Duplicate returns a deep copy with a fresh id, fresh item ids, fresh
// timestamps and a " (Copy)" suffix on the quote reference.
func (q *Quotation) Duplicate() *Quotation {
	items := make([]QuotationItem, len(q.Items))
	copy(items, q.Items)
	for i := range items {
		items[i].ID = uuid.NewString()
	}
	now := production.Now()
	return &Quotation{
		ID:          uuid.NewString(),
		QuoteRef:    q.QuoteRef + " (Copy)",
		BuyerName:   q.BuyerName,
		Status:      q.Status,
		Items:       items,
		ItemsCount:  q.ItemsCount,
		TotalVolume: q.TotalVolume,
		TotalValue:  q.TotalValue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
