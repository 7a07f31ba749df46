// Package library holds the swatch library application services. One
// service instance exists per library (leather, finish); the behavior
// is identical, only the backing collection differs.
package library

import (
	"context"
	"strings"

	"github.com/prodsheet/backend/internal/domain/library"
)

// MaterialService handles swatch library operations
type MaterialService struct {
	repo library.MaterialRepository
	kind library.MaterialKind
}

// NewMaterialService creates a service over one swatch library
func NewMaterialService(repo library.MaterialRepository, kind library.MaterialKind) *MaterialService {
	return &MaterialService{repo: repo, kind: kind}
}

// Kind identifies which library this service fronts
func (s *MaterialService) Kind() library.MaterialKind {
	return s.kind
}

// List returns all swatches
func (s *MaterialService) List(ctx context.Context) ([]library.MaterialItem, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns one swatch
func (s *MaterialService) GetByID(ctx context.Context, id string) (*library.MaterialItem, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new swatch and echoes back the stored document
func (s *MaterialService) Create(ctx context.Context, req CreateMaterialRequest) (*library.MaterialItem, error) {
	item := library.NewMaterialItem(req.Code, req.Name, req.Description, req.Color, req.Image)
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies a merge-patch to a swatch
func (s *MaterialService) Update(ctx context.Context, id string, req UpdateMaterialRequest) (*library.MaterialItem, error) {
	fields := map[string]any{}
	if req.Code != nil {
		fields["code"] = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		return s.repo.FindByID(ctx, id)
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes a swatch. Orders referencing its code keep their
// dangling reference.
func (s *MaterialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
