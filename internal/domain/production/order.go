package production

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the production status of an order
type OrderStatus string

const (
	OrderStatusDraft        OrderStatus = "Draft"
	OrderStatusSubmitted    OrderStatus = "Submitted"
	OrderStatusInProduction OrderStatus = "In Production"
	OrderStatusDone         OrderStatus = "Done"
)

// IsValid checks if the status is one of the known values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusSubmitted, OrderStatusInProduction, OrderStatusDone:
		return true
	}
	return false
}

// OrderItem is one furniture piece specification within an order.
// Items are embedded in their order; their lifecycle is bound to it.
type OrderItem struct {
	ID                string   `bson:"id" json:"id"`
	ProductCode       string   `bson:"product_code" json:"product_code"`
	Description       string   `bson:"description" json:"description"`
	Category          string   `bson:"category" json:"category"`
	HeightCM          float64  `bson:"height_cm" json:"height_cm"`
	DepthCM           float64  `bson:"depth_cm" json:"depth_cm"`
	WidthCM           float64  `bson:"width_cm" json:"width_cm"`
	CBM               float64  `bson:"cbm" json:"cbm"`
	CBMAuto           bool     `bson:"cbm_auto" json:"cbm_auto"`
	Quantity          int      `bson:"quantity" json:"quantity"`
	InHouseProduction bool     `bson:"in_house_production" json:"in_house_production"`
	MachineHall       string   `bson:"machine_hall" json:"machine_hall"`
	LeatherCode       string   `bson:"leather_code" json:"leather_code"`
	LeatherImage      string   `bson:"leather_image" json:"leather_image"`
	FinishCode        string   `bson:"finish_code" json:"finish_code"`
	FinishImage       string   `bson:"finish_image" json:"finish_image"`
	ColorNotes        string   `bson:"color_notes" json:"color_notes"`
	LegColor          string   `bson:"leg_color" json:"leg_color"`
	WoodFinish        string   `bson:"wood_finish" json:"wood_finish"`
	Notes             string   `bson:"notes" json:"notes"`
	Images            []string `bson:"images" json:"images"`
	ReferenceImages   []string `bson:"reference_images" json:"reference_images"`
}

// Volume returns the item's cubic-meter measure. When CBMAuto is set the
// stored CBM value is never trusted and the volume is recomputed from the
// dimensions, rounded to 4 decimals.
func (i OrderItem) Volume() float64 {
	if !i.CBMAuto {
		return i.CBM
	}
	cbm := i.HeightCM * i.DepthCM * i.WidthCM / 1_000_000
	return math.Round(cbm*10000) / 10000
}

// Normalize assigns ids to items that lack one and defaults quantity to 1.
func (i *OrderItem) Normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	if i.Images == nil {
		i.Images = []string{}
	}
	if i.ReferenceImages == nil {
		i.ReferenceImages = []string{}
	}
}

// Order is a production job containing one or more furniture line items
// for a buyer. Items are owned by value.
type Order struct {
	ID            string      `bson:"id" json:"id"`
	SalesOrderRef string      `bson:"sales_order_ref" json:"sales_order_ref"`
	BuyerPORef    string      `bson:"buyer_po_ref" json:"buyer_po_ref"`
	BuyerName     string      `bson:"buyer_name" json:"buyer_name"`
	EntryDate     string      `bson:"entry_date" json:"entry_date"`
	InformDate    string      `bson:"inform_date" json:"inform_date"`
	Status        OrderStatus `bson:"status" json:"status"`
	Factory       string      `bson:"factory" json:"factory"`
	Items         []OrderItem `bson:"items" json:"items"`
	CreatedAt     string      `bson:"created_at" json:"created_at"`
	UpdatedAt     string      `bson:"updated_at" json:"updated_at"`
}

// NewOrder creates a new order with a server-generated id and timestamps.
// Item ids are assigned where missing.
func NewOrder(salesOrderRef, buyerPORef, buyerName, entryDate, informDate string, status OrderStatus, factory string, items []OrderItem) *Order {
	if status == "" {
		status = OrderStatusDraft
	}
	if items == nil {
		items = []OrderItem{}
	}
	for i := range items {
		items[i].Normalize()
	}
	now := Now()
	return &Order{
		ID:            uuid.NewString(),
		SalesOrderRef: salesOrderRef,
		BuyerPORef:    buyerPORef,
		BuyerName:     buyerName,
		EntryDate:     entryDate,
		InformDate:    informDate,
		Status:        status,
		Factory:       factory,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Now returns the current UTC time in the wire format used for all
// timestamps (RFC3339, matching the documents already in the store).
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
