package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Valid reports enum membership only. Any status may be set from any
// other, there is no transition graph.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

// Order is stored in two places, a per-user collection and a global one.
// Both copies share the ID and must always agree on Status; they are only
// ever written together.
type Order struct {
	ID            uuid.UUID
	UserID        string
	UserName      string
	UserEmail     string
	Items         []OrderItem
	TotalPrice    Money
	Status        OrderStatus
	PaymentStatus PaymentStatus

	CreatedAt time.Time
}

// OrderItem is a frozen copy of a cart line item. It is never re-read
// from the catalog after the order is placed.
type OrderItem struct {
	BookID   string
	Title    string
	Author   string
	Price    Money
	Quantity int
}
