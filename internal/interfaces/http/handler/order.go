package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/prodsheet/backend/internal/application/production"
)

// OrderHandler serves the order CRUD endpoints and the dashboard stats
type OrderHandler struct {
	BaseHandler
	orders *production.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *production.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// RegisterRoutes registers order routes on the API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
	}
	rg.GET("/dashboard/stats", h.Stats)
}

// List returns all orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Get returns one order
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Create creates an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req production.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	order, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// Update merge-patches an order
func (h *OrderHandler) Update(c *gin.Context) {
	var req production.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.InvalidBody(c, err)
		return
	}
	order, err := h.orders.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete removes an order
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Order deleted"})
}

// Stats returns the dashboard aggregates
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.orders.DashboardStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
