package port

import (
	"context"

	"github.com/nikolayk812/bookverse/internal/domain"
)

type BookRepository interface {
	GetBook(ctx context.Context, id string) (domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	CreateBook(ctx context.Context, book domain.Book) (domain.Book, error)
	UpdateBook(ctx context.Context, book domain.Book) error
	DeleteBook(ctx context.Context, id string) (bool, error)
	CountBooks(ctx context.Context) (int64, error)
}
