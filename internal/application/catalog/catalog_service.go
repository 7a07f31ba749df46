// Package catalog holds the reference-data application services:
// factories, categories and catalog products. Factories and categories
// are lazily seeded with a fixed default set on first read.
package catalog

import (
	"context"
	"strings"

	"github.com/prodsheet/backend/internal/domain/catalog"
)

// FactoryService handles factory reference records
type FactoryService struct {
	repo catalog.FactoryRepository
}

// NewFactoryService creates a new FactoryService
func NewFactoryService(repo catalog.FactoryRepository) *FactoryService {
	return &FactoryService{repo: repo}
}

// List returns all factories, seeding the default set when the
// collection is empty. Seeding is idempotent: a second read returns
// exactly the seeded set.
func (s *FactoryService) List(ctx context.Context) ([]catalog.Factory, error) {
	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

// EnsureDefaults inserts the default factories when none exist
func (s *FactoryService) EnsureDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	for _, factory := range catalog.DefaultFactories() {
		f := factory
		if err := s.repo.Insert(ctx, &f); err != nil {
			return err
		}
	}
	return nil
}

// Create persists a new factory
func (s *FactoryService) Create(ctx context.Context, req CreateFactoryRequest) (*catalog.Factory, error) {
	factory := catalog.NewFactory(req.Code, req.Name)
	if err := s.repo.Insert(ctx, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

// Delete removes a factory
func (s *FactoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CategoryService handles furniture categories
type CategoryService struct {
	repo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns all categories, seeding the default set when empty
func (s *CategoryService) List(ctx context.Context) ([]catalog.Category, error) {
	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

// EnsureDefaults inserts the default categories when none exist
func (s *CategoryService) EnsureDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	for _, category := range catalog.DefaultCategories() {
		c := category
		if err := s.repo.Insert(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}

// Create persists a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*catalog.Category, error) {
	category := catalog.NewCategory(req.Name)
	if err := s.repo.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ProductService handles catalog products
type ProductService struct {
	repo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo catalog.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	product := catalog.NewProduct(req.Code, req.Description, req.Category,
		req.HeightCM, req.DepthCM, req.WidthCM, req.CBM, req.Image)
	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a merge-patch to a product
func (s *ProductService) Update(ctx context.Context, id string, req UpdateProductRequest) (*catalog.Product, error) {
	fields := map[string]any{}
	if req.Code != nil {
		fields["code"] = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.HeightCM != nil {
		fields["height_cm"] = *req.HeightCM
	}
	if req.DepthCM != nil {
		fields["depth_cm"] = *req.DepthCM
	}
	if req.WidthCM != nil {
		fields["width_cm"] = *req.WidthCM
	}
	if req.CBM != nil {
		fields["cbm"] = *req.CBM
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

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
