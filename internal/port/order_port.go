package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/bookverse/internal/domain"
)

// OrderRepository never exposes single-copy mutators: both physical
// copies of an order are written inside one transaction or not at all.
type OrderRepository interface {
	// CreateOrder writes the per-user and the global copy and deletes
	// the order's line items from the owner's cart, all-or-nothing.
	// It returns the order with the store-assigned creation time.
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)

	// SetStatus updates the status field on both copies in one
	// transaction. domain.ErrNotFound if either copy is missing.
	SetStatus(ctx context.Context, orderID uuid.UUID, userID string, status domain.OrderStatus) error

	GetUserOrder(ctx context.Context, userID string, orderID uuid.UUID) (domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
