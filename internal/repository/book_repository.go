package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type bookRepository struct {
	pool *pgxpool.Pool
}

func NewBook(pool *pgxpool.Pool) (port.BookRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &bookRepository{pool: pool}, nil
}

const bookColumns = `id, title, author, genre, isbn, price_amount, price_currency,
	description, stock_quantity, image_url, image_hint`

func (r *bookRepository) GetBook(ctx context.Context, id string) (domain.Book, error) {
	if id == "" {
		return domain.Book{}, fmt.Errorf("id is empty")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE id = $1`, id)

	book, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Book{}, fmt.Errorf("book %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Book{}, fmt.Errorf("scanBook: %w", err)
	}

	return book, nil
}

func (r *bookRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+`
		FROM books
		ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanBook: %w", err)
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

func (r *bookRepository) CreateBook(ctx context.Context, book domain.Book) (domain.Book, error) {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO books (id, title, author, genre, isbn, price_amount, price_currency,
		                   description, stock_quantity, image_url, image_hint)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		book.ID, book.Title, book.Author, book.Genre, book.ISBN,
		book.Price.Amount, book.Price.Currency.String(),
		book.Description, book.StockQuantity, book.ImageURL, book.ImageHint)
	if err != nil {
		return domain.Book{}, fmt.Errorf("pool.Exec: %w", err)
	}

	return book, nil
}

func (r *bookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	if book.ID == "" {
		return fmt.Errorf("id is empty")
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE books
		SET title = $2, author = $3, genre = $4, isbn = $5,
		    price_amount = $6, price_currency = $7, description = $8,
		    stock_quantity = $9, image_url = $10, image_hint = $11
		WHERE id = $1`,
		book.ID, book.Title, book.Author, book.Genre, book.ISBN,
		book.Price.Amount, book.Price.Currency.String(),
		book.Description, book.StockQuantity, book.ImageURL, book.ImageHint)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %q: %w", book.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *bookRepository) DeleteBook(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("id is empty")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *bookRepository) CountBooks(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("pool.QueryRow: %w", err)
	}

	return count, nil
}

func scanBook(row pgx.Row) (domain.Book, error) {
	var (
		book          domain.Book
		priceAmount   decimal.Decimal
		priceCurrency string
	)

	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Genre, &book.ISBN,
		&priceAmount, &priceCurrency,
		&book.Description, &book.StockQuantity, &book.ImageURL, &book.ImageHint); err != nil {
		return domain.Book{}, err
	}

	parsedCurrency, err := currency.ParseISO(priceCurrency)
	if err != nil {
		return domain.Book{}, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
	}
	book.Price = domain.Money{Amount: priceAmount, Currency: parsedCurrency}

	return book, nil
}
