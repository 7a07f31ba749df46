package library

// CreateMaterialRequest creates a new swatch in a library
type CreateMaterialRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Image       string `json:"image"`
}

// UpdateMaterialRequest is a merge-patch: only non-nil fields overwrite
type UpdateMaterialRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Image       *string `json:"image"`
}
