package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/bookverse/internal/domain"
)

type moneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func toMoneyDTO(m domain.Money) moneyDTO {
	return moneyDTO{Amount: m.Amount.String(), Currency: m.Currency.String()}
}

type bookDTO struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Genre         string   `json:"genre"`
	ISBN          string   `json:"isbn"`
	Price         moneyDTO `json:"price"`
	Description   string   `json:"description"`
	StockQuantity int      `json:"stockQuantity"`
	ImageURL      string   `json:"imageUrl"`
	ImageHint     string   `json:"imageHint"`
}

func toBookDTO(b domain.Book) bookDTO {
	return bookDTO{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		ISBN:          b.ISBN,
		Price:         toMoneyDTO(b.Price),
		Description:   b.Description,
		StockQuantity: b.StockQuantity,
		ImageURL:      b.ImageURL,
		ImageHint:     b.ImageHint,
	}
}

func toBookDTOs(books []domain.Book) []bookDTO {
	dtos := make([]bookDTO, 0, len(books))
	for _, b := range books {
		dtos = append(dtos, toBookDTO(b))
	}
	return dtos
}

type cartItemDTO struct {
	BookID    string   `json:"bookId"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Price     moneyDTO `json:"price"`
	ImageURL  string   `json:"imageUrl"`
	ImageHint string   `json:"imageHint"`
	Quantity  int      `json:"quantity"`
}

type cartDTO struct {
	Items    []cartItemDTO `json:"items"`
	Subtotal moneyDTO      `json:"subtotal"`
}

func toCartDTO(cart domain.Cart) (cartDTO, error) {
	subtotal, err := cart.Subtotal()
	if err != nil {
		return cartDTO{}, err
	}

	items := make([]cartItemDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemDTO{
			BookID:    item.BookID,
			Title:     item.Title,
			Author:    item.Author,
			Price:     toMoneyDTO(item.Price),
			ImageURL:  item.ImageURL,
			ImageHint: item.ImageHint,
			Quantity:  item.Quantity,
		})
	}

	return cartDTO{Items: items, Subtotal: toMoneyDTO(subtotal)}, nil
}

type orderItemDTO struct {
	BookID   string   `json:"bookId"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Price    moneyDTO `json:"price"`
	Quantity int      `json:"quantity"`
}

type orderDTO struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	UserName      string         `json:"userName"`
	UserEmail     string         `json:"userEmail"`
	Items         []orderItemDTO `json:"items"`
	TotalPrice    moneyDTO       `json:"totalPrice"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func toOrderDTO(order domain.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDTO{
			BookID:   item.BookID,
			Title:    item.Title,
			Author:   item.Author,
			Price:    toMoneyDTO(item.Price),
			Quantity: item.Quantity,
		})
	}

	return orderDTO{
		ID:            order.ID.String(),
		UserID:        order.UserID,
		UserName:      order.UserName,
		UserEmail:     order.UserEmail,
		Items:         items,
		TotalPrice:    toMoneyDTO(order.TotalPrice),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		CreatedAt:     order.CreatedAt,
	}
}

func toOrderDTOs(orders []domain.Order) []orderDTO {
	dtos := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toOrderDTO(o))
	}
	return dtos
}

// writeError maps the error taxonomy to HTTP statuses. Store faults are
// transient from the client's point of view.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrTransactionFailed):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
