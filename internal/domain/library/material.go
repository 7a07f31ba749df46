// Package library holds the reusable material references (leather and
// finish swatches) that orders point at by code. Library items have a
// lifecycle independent of orders; deleting one leaves any order
// references dangling, which is accepted behavior.
package library

import (
	"strings"

	"github.com/google/uuid"

	"github.com/prodsheet/backend/internal/domain/production"
)

// MaterialKind distinguishes the two swatch libraries
type MaterialKind string

const (
	MaterialLeather MaterialKind = "leather"
	MaterialFinish  MaterialKind = "finish"
)

// MaterialItem is a leather or finish swatch: a code, a display name, an
// optional color value and an optional inline image.
type MaterialItem struct {
	ID          string `bson:"id" json:"id"`
	Code        string `bson:"code" json:"code"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Color       string `bson:"color" json:"color"`
	Image       string `bson:"image" json:"image"`
	CreatedAt   string `bson:"created_at" json:"created_at"`
}

// NewMaterialItem creates a swatch with a server-generated id. Codes are
// upper-cased by convention; uniqueness is conventional, not enforced.
func NewMaterialItem(code, name, description, color, image string) *MaterialItem {
	return &MaterialItem{
		ID:          uuid.NewString(),
		Code:        strings.ToUpper(strings.TrimSpace(code)),
		Name:        name,
		Description: description,
		Color:       color,
		Image:       image,
		CreatedAt:   production.Now(),
	}
}
