package catalog

// CreateFactoryRequest creates a factory reference record
type CreateFactoryRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateCategoryRequest creates a furniture category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateProductRequest creates a catalog product
type CreateProductRequest struct {
	Code        string  `json:"code" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	HeightCM    float64 `json:"height_cm"`
	DepthCM     float64 `json:"depth_cm"`
	WidthCM     float64 `json:"width_cm"`
	CBM         float64 `json:"cbm"`
	Image       string  `json:"image"`
}

// UpdateProductRequest is a merge-patch: only non-nil fields overwrite
type UpdateProductRequest struct {
	Code        *string  `json:"code"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	HeightCM    *float64 `json:"height_cm"`
	DepthCM     *float64 `json:"depth_cm"`
	WidthCM     *float64 `json:"width_cm"`
	CBM         *float64 `json:"cbm"`
	Image       *string  `json:"image"`
}
