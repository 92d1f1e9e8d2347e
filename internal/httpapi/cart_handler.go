package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/bookverse/internal/domain"
)

type CartHandler struct {
	cart CartService
}

func NewCartHandler(cart CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addItemRequest struct {
	BookID string `json:"bookId" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(c *gin.Context) {
	user, _ := identityFrom(c)

	cart, err := h.cart.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	dto, err := toCartDTO(cart)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	user, _ := identityFrom(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outcome, err := h.cart.AddItem(c.Request.Context(), user.ID, req.BookID)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if outcome == domain.AddOutcomeCreated {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"outcome": outcome})
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	user, _ := identityFrom(c)
	bookID := c.Param("bookId")

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.cart.SetQuantity(c.Request.Context(), user.ID, bookID, req.Quantity); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	user, _ := identityFrom(c)
	bookID := c.Param("bookId")

	if err := h.cart.RemoveItem(c.Request.Context(), user.ID, bookID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
