package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

// CartItem carries a snapshot of the book taken at add time.
// Price changes to the book afterwards do not affect the item.
type CartItem struct {
	BookID    string
	Title     string
	Author    string
	Price     Money
	ImageURL  string
	ImageHint string
	Quantity  int

	CreatedAt time.Time
}

// AddOutcome tells whether an add-to-cart call created a new line item
// or incremented an existing one.
type AddOutcome string

const (
	AddOutcomeCreated     AddOutcome = "created"
	AddOutcomeIncremented AddOutcome = "incremented"
)

// Subtotal sums price times quantity over all items. It is computed fresh
// on every call and never stored. All items must share one currency.
func (c Cart) Subtotal() (Money, error) {
	if len(c.Items) == 0 {
		return Money{Amount: decimal.Zero, Currency: currency.XXX}, nil
	}

	total := Money{Amount: decimal.Zero, Currency: c.Items[0].Price.Currency}
	for _, item := range c.Items {
		var err error
		total, err = total.Add(item.Price.Mul(item.Quantity))
		if err != nil {
			return Money{}, fmt.Errorf("total.Add: %w", err)
		}
	}

	return total, nil
}
