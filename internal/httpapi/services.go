package httpapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/bookverse/internal/domain"
)

// The handlers define the interfaces they consume, the service structs
// satisfy them.

type CartService interface {
	AddItem(ctx context.Context, userID, bookID string) (domain.AddOutcome, error)
	SetQuantity(ctx context.Context, userID, bookID string, quantity int) error
	RemoveItem(ctx context.Context, userID, bookID string) error
	GetCart(ctx context.Context, userID string) (domain.Cart, error)
}

type OrderService interface {
	Checkout(ctx context.Context, user domain.Identity) (domain.Order, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, userID string, status domain.OrderStatus) error
	GetUserOrder(ctx context.Context, userID string, orderID uuid.UUID) (domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type BookCatalog interface {
	GetBook(ctx context.Context, id string) (domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	CreateBook(ctx context.Context, book domain.Book) (domain.Book, error)
	UpdateBook(ctx context.Context, book domain.Book) error
	DeleteBook(ctx context.Context, id string) (bool, error)
}

type Recommender interface {
	Recommend(ctx context.Context, bookID string) []domain.Book
}

type Limiter interface {
	Allow(ctx context.Context, key string) bool
}
