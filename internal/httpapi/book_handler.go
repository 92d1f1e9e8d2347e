package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type BookHandler struct {
	books BookCatalog
}

func NewBookHandler(books BookCatalog) *BookHandler {
	return &BookHandler{books: books}
}

type bookRequest struct {
	Title         string  `json:"title" binding:"required"`
	Author        string  `json:"author" binding:"required"`
	Genre         string  `json:"genre"`
	ISBN          string  `json:"isbn"`
	Price         float64 `json:"price" binding:"min=0"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stockQuantity" binding:"min=0"`
	ImageURL      string  `json:"imageUrl"`
	ImageHint     string  `json:"imageHint"`
}

func (r bookRequest) toDomain(id string) (domain.Book, error) {
	unit := currency.USD
	if r.Currency != "" {
		var err error
		unit, err = currency.ParseISO(r.Currency)
		if err != nil {
			return domain.Book{}, err
		}
	}

	return domain.Book{
		ID:            id,
		Title:         r.Title,
		Author:        r.Author,
		Genre:         r.Genre,
		ISBN:          r.ISBN,
		Price:         domain.Money{Amount: decimal.NewFromFloat(r.Price), Currency: unit},
		Description:   r.Description,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
		ImageHint:     r.ImageHint,
	}, nil
}

func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.books.ListBooks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookDTOs(books))
}

func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.books.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookDTO(book))
}

func (h *BookHandler) CreateBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	book, err := req.toDomain("")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown currency"})
		return
	}

	created, err := h.books.CreateBook(c.Request.Context(), book)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookDTO(created))
}

func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	book, err := req.toDomain(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown currency"})
		return
	}

	if err := h.books.UpdateBook(c.Request.Context(), book); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) DeleteBook(c *gin.Context) {
	if _, err := h.books.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
