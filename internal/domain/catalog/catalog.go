// Package catalog holds the simple reference collections: factories,
// categories and products. Factories and categories are lazily seeded
// with a fixed default set on first read.
package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/prodsheet/backend/internal/domain/production"
)

// Factory is a production site orders reference by name
type Factory struct {
	ID   string `bson:"id" json:"id"`
	Code string `bson:"code" json:"code"`
	Name string `bson:"name" json:"name"`
}

// NewFactory creates a factory with a server-generated id
func NewFactory(code, name string) *Factory {
	return &Factory{
		ID:   uuid.NewString(),
		Code: strings.ToUpper(strings.TrimSpace(code)),
		Name: name,
	}
}

// Category is a furniture category label
type Category struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// NewCategory creates a category with a server-generated id
func NewCategory(name string) *Category {
	return &Category{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// Product is a catalog record for a furniture piece; the main target of
// spreadsheet imports.
type Product struct {
	ID          string  `bson:"id" json:"id"`
	Code        string  `bson:"code" json:"code"`
	Description string  `bson:"description" json:"description"`
	Category    string  `bson:"category" json:"category"`
	HeightCM    float64 `bson:"height_cm" json:"height_cm"`
	DepthCM     float64 `bson:"depth_cm" json:"depth_cm"`
	WidthCM     float64 `bson:"width_cm" json:"width_cm"`
	CBM         float64 `bson:"cbm" json:"cbm"`
	Image       string  `bson:"image" json:"image"`
	CreatedAt   string  `bson:"created_at" json:"created_at"`
}

// NewProduct creates a product with a server-generated id and timestamp
func NewProduct(code, description, category string, heightCM, depthCM, widthCM, cbm float64, image string) *Product {
	return &Product{
		ID:          uuid.NewString(),
		Code:        strings.ToUpper(strings.TrimSpace(code)),
		Description: description,
		Category:    category,
		HeightCM:    heightCM,
		DepthCM:     depthCM,
		WidthCM:     widthCM,
		CBM:         cbm,
		Image:       image,
		CreatedAt:   production.Now(),
	}
}
