package production

import (
	domain "github.com/prodsheet/backend/internal/domain/production"
)

// OrderItemInput is one line item of a create or update request.
// CBMAuto is a pointer so an omitted flag defaults to auto-compute.
type OrderItemInput struct {
	ID                string   `json:"id"`
	ProductCode       string   `json:"product_code"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	HeightCM          float64  `json:"height_cm"`
	DepthCM           float64  `json:"depth_cm"`
	WidthCM           float64  `json:"width_cm"`
	CBM               float64  `json:"cbm"`
	CBMAuto           *bool    `json:"cbm_auto"`
	Quantity          int      `json:"quantity"`
	InHouseProduction bool     `json:"in_house_production"`
	MachineHall       string   `json:"machine_hall"`
	LeatherCode       string   `json:"leather_code"`
	LeatherImage      string   `json:"leather_image"`
	FinishCode        string   `json:"finish_code"`
	FinishImage       string   `json:"finish_image"`
	ColorNotes        string   `json:"color_notes"`
	LegColor          string   `json:"leg_color"`
	WoodFinish        string   `json:"wood_finish"`
	Notes             string   `json:"notes"`
	Images            []string `json:"images"`
	ReferenceImages   []string `json:"reference_images"`
}

// ToDomain converts an input line to a normalized domain item
func (in OrderItemInput) ToDomain() domain.OrderItem {
	cbmAuto := true
	if in.CBMAuto != nil {
		cbmAuto = *in.CBMAuto
	}
	item := domain.OrderItem{
		ID:                in.ID,
		ProductCode:       in.ProductCode,
		Description:       in.Description,
		Category:          in.Category,
		HeightCM:          in.HeightCM,
		DepthCM:           in.DepthCM,
		WidthCM:           in.WidthCM,
		CBM:               in.CBM,
		CBMAuto:           cbmAuto,
		Quantity:          in.Quantity,
		InHouseProduction: in.InHouseProduction,
		MachineHall:       in.MachineHall,
		LeatherCode:       in.LeatherCode,
		LeatherImage:      in.LeatherImage,
		FinishCode:        in.FinishCode,
		FinishImage:       in.FinishImage,
		ColorNotes:        in.ColorNotes,
		LegColor:          in.LegColor,
		WoodFinish:        in.WoodFinish,
		Notes:             in.Notes,
		Images:            in.Images,
		ReferenceImages:   in.ReferenceImages,
	}
	item.Normalize()
	return item
}

// CreateOrderRequest creates a new order
type CreateOrderRequest struct {
	SalesOrderRef string           `json:"sales_order_ref"`
	BuyerPORef    string           `json:"buyer_po_ref"`
	BuyerName     string           `json:"buyer_name"`
	EntryDate     string           `json:"entry_date"`
	InformDate    string           `json:"inform_date"`
	Status        string           `json:"status"`
	Factory       string           `json:"factory"`
	Items         []OrderItemInput `json:"items"`
}

// UpdateOrderRequest is a merge-patch: only non-nil fields overwrite
// the stored document.
type UpdateOrderRequest struct {
	SalesOrderRef *string           `json:"sales_order_ref"`
	BuyerPORef    *string           `json:"buyer_po_ref"`
	BuyerName     *string           `json:"buyer_name"`
	EntryDate     *string           `json:"entry_date"`
	InformDate    *string           `json:"inform_date"`
	Status        *string           `json:"status"`
	Factory       *string           `json:"factory"`
	Items         *[]OrderItemInput `json:"items"`
}

// DashboardStats is the aggregate view backing the dashboard
type DashboardStats struct {
	TotalOrders  int64          `json:"total_orders"`
	DraftOrders  int64          `json:"draft_orders"`
	InProduction int64          `json:"in_production"`
	Completed    int64          `json:"completed"`
	RecentOrders []domain.Order `json:"recent_orders"`
}
