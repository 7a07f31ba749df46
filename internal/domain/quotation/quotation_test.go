package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuotation(t *testing.T) {
	q := NewQuotation("Q-100", "Acme", "draft",
		[]QuotationItem{{ProductCode: "CH-1001", Quantity: 2}}, 1, 0.5, 1200)

	assert.NotEmpty(t, q.ID)
	assert.NotEmpty(t, q.Items[0].ID)
	assert.Equal(t, 1, q.ItemsCount)
	assert.Equal(t, 0.5, q.TotalVolume)
	assert.Equal(t, 1200.0, q.TotalValue)
	assert.Equal(t, q.CreatedAt, q.UpdatedAt)
}

func TestQuotation_Duplicate(t *testing.T) {
	original := NewQuotation("Q-100", "Acme", "sent",
		[]QuotationItem{{ProductCode: "CH-1001"}, {ProductCode: "TB-2002"}}, 2, 1.1, 900)

	copy := original.Duplicate()

	assert.NotEqual(t, original.ID, copy.ID)
	assert.Equal(t, "Q-100 (Copy)", copy.QuoteRef)
	assert.Equal(t, original.BuyerName, copy.BuyerName)
	assert.Equal(t, original.Status, copy.Status)
	assert.Equal(t, original.TotalValue, copy.TotalValue)

	assert.Len(t, copy.Items, 2)
	for i := range copy.Items {
		assert.NotEqual(t, original.Items[i].ID, copy.Items[i].ID)
		assert.Equal(t, original.Items[i].ProductCode, copy.Items[i].ProductCode)
	}

	// mutating the copy must not touch the original
	copy.Items[0].ProductCode = "changed"
	assert.Equal(t, "CH-1001", original.Items[0].ProductCode)
}
