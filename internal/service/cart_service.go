package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
)

type CartService struct {
	carts port.CartRepository
	books port.BookRepository
}

func NewCartService(carts port.CartRepository, books port.BookRepository) (*CartService, error) {
	if carts == nil {
		return nil, fmt.Errorf("carts is nil")
	}
	if books == nil {
		return nil, fmt.Errorf("books is nil")
	}

	return &CartService{carts: carts, books: books}, nil
}

// AddItem adds one copy of the book to the user's cart: a new line item
// with a snapshot of the book's fields, or plus one on the existing one.
// At most one attempt, the caller decides whether to retry; re-invoking
// is safe because it is a well-defined increment, not a set.
func (s *CartService) AddItem(ctx context.Context, userID, bookID string) (domain.AddOutcome, error) {
	if userID == "" {
		return "", domain.ErrUnauthenticated
	}

	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return "", storeErr(err)
	}

	outcome, err := s.carts.AddItem(ctx, userID, book.CartSnapshot())
	if err != nil {
		return "", storeErr(err)
	}

	return outcome, nil
}

// SetQuantity clamps to a minimum of 1. Zero or negative never means
// remove, removal is its own operation.
func (s *CartService) SetQuantity(ctx context.Context, userID, bookID string, quantity int) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	if quantity < 1 {
		quantity = 1
	}

	if err := s.carts.SetQuantity(ctx, userID, bookID, quantity); err != nil {
		return storeErr(err)
	}

	return nil
}

// RemoveItem is idempotent, removing an absent item is not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, bookID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	if _, err := s.carts.DeleteItem(ctx, userID, bookID); err != nil {
		return storeErr(err)
	}

	return nil
}

func (s *CartService) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	if userID == "" {
		return domain.Cart{}, domain.ErrUnauthenticated
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return domain.Cart{}, storeErr(err)
	}

	return cart, nil
}
