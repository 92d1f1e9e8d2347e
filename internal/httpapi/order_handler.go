package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/bookverse/internal/domain"
)

type OrderHandler struct {
	orders OrderService
}

func NewOrderHandler(orders OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	user, _ := identityFrom(c)

	order, err := h.orders.Checkout(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderDTO(order))
}

func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	user, _ := identityFrom(c)

	orders, err := h.orders.ListUserOrders(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDTOs(orders))
}

func (h *OrderHandler) GetUserOrder(c *gin.Context) {
	user, _ := identityFrom(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetUserOrder(c.Request.Context(), user.ID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDTO(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDTOs(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderDTO(order))
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus looks up the global copy first to learn the owner, then
// updates both copies in one batch.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.orders.SetStatus(c.Request.Context(), orderID, order.UserID, status); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
