package service_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomIdentity() domain.Identity {
	return domain.Identity{
		ID:    gofakeit.UUID(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
	}
}

func TestOrderServiceCheckout(t *testing.T) {
	ctx := t.Context()
	user := randomIdentity()

	dune := randomBook()
	dune.Price = usd("15.99")
	hobbit := randomBook()
	hobbit.Price = usd("12.50")

	carts := newFakeCartRepo()
	orders := &fakeOrderRepo{}

	cartSvc, err := service.NewCartService(carts, newFakeBookRepo(dune, hobbit))
	require.NoError(t, err)
	orderSvc, err := service.NewOrderService(carts, orders)
	require.NoError(t, err)

	_, err = cartSvc.AddItem(ctx, user.ID, dune.ID)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, user.ID, dune.ID)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, user.ID, hobbit.ID)
	require.NoError(t, err)

	order, err := orderSvc.Checkout(ctx, user)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, user.Name, order.UserName)
	assert.Equal(t, user.Email, order.UserEmail)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.TotalPrice.Amount.Equal(decimal.RequireFromString("44.48")),
		"got %s", order.TotalPrice.Amount)
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, orders.created, 1)
	assert.Equal(t, order.ID, orders.created[0].ID)
}

func TestOrderServiceCheckoutUnauthenticated(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc, err := service.NewOrderService(newFakeCartRepo(), orders)
	require.NoError(t, err)

	_, err = svc.Checkout(t.Context(), domain.Identity{})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Empty(t, orders.created)
}

// Checking out an empty cart is rejected before anything is written.
func TestOrderServiceCheckoutEmptyCart(t *testing.T) {
	orders := &fakeOrderRepo{}
	svc, err := service.NewOrderService(newFakeCartRepo(), orders)
	require.NoError(t, err)

	_, err = svc.Checkout(t.Context(), randomIdentity())
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, orders.created)
}

func TestOrderServiceSetStatus(t *testing.T) {
	ctx := t.Context()
	user := randomIdentity()
	book := randomBook()

	carts := newFakeCartRepo()
	orders := &fakeOrderRepo{}

	cartSvc, err := service.NewCartService(carts, newFakeBookRepo(book))
	require.NoError(t, err)
	orderSvc, err := service.NewOrderService(carts, orders)
	require.NoError(t, err)

	_, err = cartSvc.AddItem(ctx, user.ID, book.ID)
	require.NoError(t, err)
	order, err := orderSvc.Checkout(ctx, user)
	require.NoError(t, err)

	require.NoError(t, orderSvc.SetStatus(ctx, order.ID, user.ID, domain.OrderStatusShipped))

	got, err := orderSvc.GetUserOrder(ctx, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)

	// unknown statuses never reach the store
	err = orderSvc.SetStatus(ctx, order.ID, user.ID, domain.OrderStatus("returned"))
	require.EqualError(t, err, `order status "returned" is not valid`)
	got, err = orderSvc.GetUserOrder(ctx, user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)

	err = orderSvc.SetStatus(ctx, uuid.New(), user.ID, domain.OrderStatusDelivered)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderServiceListUserOrders(t *testing.T) {
	ctx := t.Context()
	user := randomIdentity()
	book := randomBook()

	carts := newFakeCartRepo()
	orders := &fakeOrderRepo{}

	cartSvc, err := service.NewCartService(carts, newFakeBookRepo(book))
	require.NoError(t, err)
	orderSvc, err := service.NewOrderService(carts, orders)
	require.NoError(t, err)

	_, err = orderSvc.ListUserOrders(ctx, "")
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = cartSvc.AddItem(ctx, user.ID, book.ID)
	require.NoError(t, err)
	order, err := orderSvc.Checkout(ctx, user)
	require.NoError(t, err)

	listed, err := orderSvc.ListUserOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, order.ID, listed[0].ID)

	other, err := orderSvc.ListUserOrders(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = orderSvc.GetUserOrder(ctx, gofakeit.UUID(), order.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
