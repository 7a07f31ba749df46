package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prodsheet/backend/internal/application/catalog"
)

// FactoryHandler serves the factory reference endpoints
type FactoryHandler struct {
	BaseHandler
	factories *catalog.FactoryService
}

// NewFactoryHandler creates a new FactoryHandler
func NewFactoryHandler(factories *catalog.FactoryService) *FactoryHandler {
	return &FactoryHandler{factories: factories}
}

// RegisterRoutes registers factory routes on the API group
func (h *FactoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	factories := rg.Group("/factories")
	{
		factories.GET("", h.List)
		factories.POST("", h.Create)
		factories.DELETE("/:id", h.Delete)
	}
}

// List returns all factories, seeding defaults on first read
func (h *FactoryHandler) List(c *gin.Context) {
	factories, err := h.factories.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, factories)
}

// Create adds a factory
func (h *FactoryHandler) Create(c *gin.Context) {
	var req catalog.CreateFactoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	factory, err := h.factories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, factory)
}

// Delete removes a factory
func (h *FactoryHandler) Delete(c *gin.Context) {
	if err := h.factories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Factory deleted"})
}

// CategoryHandler serves the furniture category endpoints
type CategoryHandler struct {
	BaseHandler
	categories *catalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categories *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// RegisterRoutes registers category routes on the API group
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.DELETE("/:id", h.Delete)
	}
}

// List returns all categories, seeding defaults on first read
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Create adds a category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	category, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// Delete removes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Category deleted"})
}

// ProductHandler serves the catalog product endpoints
type ProductHandler struct {
	BaseHandler
	products *catalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *catalog.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// RegisterRoutes registers product routes on the API group
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

// List returns all products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Get returns one product
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create adds a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update merge-patches a product
func (h *ProductHandler) Update(c *gin.Context) {
	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	product, err := h.products.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Product deleted"})
}
