package port

import (
	"context"

	"github.com/nikolayk812/bookverse/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)

	// AddItem merges on the (ownerID, BookID) key: absent creates the
	// item with quantity 1, present increments the stored quantity by
	// one. The read-then-write is atomic per key, the item's snapshot
	// fields are only written on create.
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) (domain.AddOutcome, error)

	// SetQuantity overwrites the stored quantity, last write wins.
	SetQuantity(ctx context.Context, ownerID, bookID string, quantity int) error

	DeleteItem(ctx context.Context, ownerID, bookID string) (bool, error)
}
