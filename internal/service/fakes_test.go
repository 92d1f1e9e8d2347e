package service_test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/bookverse/internal/cache"
	"github.com/nikolayk812/bookverse/internal/domain"
)

type fakeBookRepo struct {
	books map[string]domain.Book
	err   error
}

func newFakeBookRepo(books ...domain.Book) *fakeBookRepo {
	m := make(map[string]domain.Book, len(books))
	for _, b := range books {
		m[b.ID] = b
	}
	return &fakeBookRepo{books: m}
}

func (f *fakeBookRepo) GetBook(_ context.Context, id string) (domain.Book, error) {
	if f.err != nil {
		return domain.Book{}, f.err
	}

	book, ok := f.books[id]
	if !ok {
		return domain.Book{}, fmt.Errorf("book %q: %w", id, domain.ErrNotFound)
	}
	return book, nil
}

func (f *fakeBookRepo) ListBooks(context.Context) ([]domain.Book, error) {
	if f.err != nil {
		return nil, f.err
	}

	books := make([]domain.Book, 0, len(f.books))
	for _, b := range f.books {
		books = append(books, b)
	}
	return books, nil
}

func (f *fakeBookRepo) CreateBook(_ context.Context, book domain.Book) (domain.Book, error) {
	f.books[book.ID] = book
	return book, nil
}

func (f *fakeBookRepo) UpdateBook(_ context.Context, book domain.Book) error {
	f.books[book.ID] = book
	return nil
}

func (f *fakeBookRepo) DeleteBook(_ context.Context, id string) (bool, error) {
	_, ok := f.books[id]
	delete(f.books, id)
	return ok, nil
}

func (f *fakeBookRepo) CountBooks(context.Context) (int64, error) {
	return int64(len(f.books)), nil
}

type fakeCartRepo struct {
	items map[string]map[string]domain.CartItem // owner -> book -> item
	err   error

	setQuantities []int // quantities as they reached the store
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]map[string]domain.CartItem)}
}

func (f *fakeCartRepo) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if f.err != nil {
		return domain.Cart{}, f.err
	}

	var items []domain.CartItem
	for _, item := range f.items[ownerID] {
		items = append(items, item)
	}
	return domain.Cart{OwnerID: ownerID, Items: items}, nil
}

func (f *fakeCartRepo) AddItem(_ context.Context, ownerID string, item domain.CartItem) (domain.AddOutcome, error) {
	if f.err != nil {
		return "", f.err
	}

	if f.items[ownerID] == nil {
		f.items[ownerID] = make(map[string]domain.CartItem)
	}

	if existing, ok := f.items[ownerID][item.BookID]; ok {
		existing.Quantity++ // snapshot fields stay as they were
		f.items[ownerID][item.BookID] = existing
		return domain.AddOutcomeIncremented, nil
	}

	item.Quantity = 1
	item.CreatedAt = time.Now()
	f.items[ownerID][item.BookID] = item
	return domain.AddOutcomeCreated, nil
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, ownerID, bookID string, quantity int) error {
	if f.err != nil {
		return f.err
	}

	f.setQuantities = append(f.setQuantities, quantity)

	item, ok := f.items[ownerID][bookID]
	if !ok {
		return fmt.Errorf("cart item %q: %w", bookID, domain.ErrNotFound)
	}

	item.Quantity = quantity
	f.items[ownerID][bookID] = item
	return nil
}

func (f *fakeCartRepo) DeleteItem(_ context.Context, ownerID, bookID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	_, ok := f.items[ownerID][bookID]
	delete(f.items[ownerID], bookID)
	return ok, nil
}

type fakeOrderRepo struct {
	created   []domain.Order
	createErr error
	setErr    error
}

func (f *fakeOrderRepo) CreateOrder(_ context.Context, order domain.Order) (domain.Order, error) {
	if f.createErr != nil {
		return domain.Order{}, f.createErr
	}

	order.CreatedAt = time.Now()
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrderRepo) SetStatus(_ context.Context, orderID uuid.UUID, userID string, status domain.OrderStatus) error {
	if f.setErr != nil {
		return f.setErr
	}

	for i, order := range f.created {
		if order.ID == orderID && order.UserID == userID {
			f.created[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
}

func (f *fakeOrderRepo) GetUserOrder(_ context.Context, userID string, orderID uuid.UUID) (domain.Order, error) {
	for _, order := range f.created {
		if order.ID == orderID && order.UserID == userID {
			return order, nil
		}
	}
	return domain.Order{}, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
}

func (f *fakeOrderRepo) ListUserOrders(_ context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	for _, order := range f.created {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetOrder(_ context.Context, orderID uuid.UUID) (domain.Order, error) {
	for _, order := range f.created {
		if order.ID == orderID {
			return order, nil
		}
	}
	return domain.Order{}, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
}

func (f *fakeOrderRepo) ListOrders(context.Context) ([]domain.Order, error) {
	return f.created, nil
}

type fakeRecommendCache struct {
	entries map[string][]string
	getErr  error
}

func newFakeRecommendCache() *fakeRecommendCache {
	return &fakeRecommendCache{entries: make(map[string][]string)}
}

func (f *fakeRecommendCache) Get(_ context.Context, bookID string) ([]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	ids, ok := f.entries[bookID]
	if !ok {
		return nil, fmt.Errorf("cache miss for %q: %w", bookID, cache.ErrCacheMiss)
	}
	return ids, nil
}

func (f *fakeRecommendCache) Set(_ context.Context, bookID string, bookIDs []string) error {
	f.entries[bookID] = bookIDs
	return nil
}
