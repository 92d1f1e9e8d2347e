package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
)

type OrderService struct {
	carts  port.CartRepository
	orders port.OrderRepository
}

func NewOrderService(carts port.CartRepository, orders port.OrderRepository) (*OrderService, error) {
	if carts == nil {
		return nil, fmt.Errorf("carts is nil")
	}
	if orders == nil {
		return nil, fmt.Errorf("orders is nil")
	}

	return &OrderService{carts: carts, orders: orders}, nil
}

// Checkout derives an immutable order from the user's current cart. The
// order id is generated before anything is written so both copies can
// reference it; items and total are frozen from the cart listing at this
// instant, never re-read from the catalog. The write and the cart
// cleanup are one atomic batch.
func (s *OrderService) Checkout(ctx context.Context, user domain.Identity) (domain.Order, error) {
	if user.ID == "" {
		return domain.Order{}, domain.ErrUnauthenticated
	}

	cart, err := s.carts.GetCart(ctx, user.ID)
	if err != nil {
		return domain.Order{}, storeErr(err)
	}

	if len(cart.Items) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	total, err := cart.Subtotal()
	if err != nil {
		return domain.Order{}, fmt.Errorf("cart.Subtotal: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, domain.OrderItem{
			BookID:   item.BookID,
			Title:    item.Title,
			Author:   item.Author,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order := domain.Order{
		ID:            uuid.New(),
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		Items:         items,
		TotalPrice:    total,
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, storeErr(err)
	}

	return created, nil
}

// SetStatus validates enum membership only, any status may follow any
// other. Both stored copies change together or not at all.
func (s *OrderService) SetStatus(ctx context.Context, orderID uuid.UUID, userID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("order status %q is not valid", status)
	}

	if err := s.orders.SetStatus(ctx, orderID, userID, status); err != nil {
		return storeErr(err)
	}

	return nil
}

func (s *OrderService) GetUserOrder(ctx context.Context, userID string, orderID uuid.UUID) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, domain.ErrUnauthenticated
	}

	order, err := s.orders.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		return domain.Order{}, storeErr(err)
	}

	return order, nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	orders, err := s.orders.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}

	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, storeErr(err)
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, storeErr(err)
	}

	return orders, nil
}
