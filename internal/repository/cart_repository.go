package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{pool: pool}, nil
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT book_id, title, author, price_amount, price_currency,
		       image_url, image_hint, quantity, created_at
		FROM cart_items
		WHERE owner_id = $1
		ORDER BY created_at`, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	items, err := mapCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

// AddItem is a single conditional write keyed by (ownerID, BookID).
// Concurrent calls on the same key serialize on the row, so the quantity
// increases by exactly one per call and no update is lost. The snapshot
// fields of an existing item are left untouched.
func (r *cartRepository) AddItem(ctx context.Context, ownerID string, item domain.CartItem) (domain.AddOutcome, error) {
	if ownerID == "" {
		return "", fmt.Errorf("ownerID is empty")
	}
	if item.BookID == "" {
		return "", fmt.Errorf("bookID is empty")
	}

	var inserted bool
	err := r.pool.QueryRow(ctx, `
		INSERT INTO cart_items (owner_id, book_id, title, author,
		                        price_amount, price_currency,
		                        image_url, image_hint, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		ON CONFLICT (owner_id, book_id)
		DO UPDATE SET quantity = cart_items.quantity + 1
		RETURNING (xmax = 0) AS inserted`,
		ownerID, item.BookID, item.Title, item.Author,
		item.Price.Amount, item.Price.Currency.String(),
		item.ImageURL, item.ImageHint).Scan(&inserted)
	if err != nil {
		return "", fmt.Errorf("pool.QueryRow: %w", err)
	}

	if inserted {
		return domain.AddOutcomeCreated, nil
	}
	return domain.AddOutcomeIncremented, nil
}

// SetQuantity writes unconditionally, there is no precondition against a
// concurrent add on the same item.
func (r *cartRepository) SetQuantity(ctx context.Context, ownerID, bookID string, quantity int) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE cart_items SET quantity = $3
		WHERE owner_id = $1 AND book_id = $2`,
		ownerID, bookID, quantity)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart item %q: %w", bookID, domain.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID, bookID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	tag, err := r.pool.Exec(ctx, `
		DELETE FROM cart_items
		WHERE owner_id = $1 AND book_id = $2`,
		ownerID, bookID)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func mapCartRowsToDomain(rows pgx.Rows) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for rows.Next() {
		var (
			item          domain.CartItem
			priceAmount   decimal.Decimal
			priceCurrency string
		)

		if err := rows.Scan(&item.BookID, &item.Title, &item.Author,
			&priceAmount, &priceCurrency,
			&item.ImageURL, &item.ImageHint, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		parsedCurrency, err := currency.ParseISO(priceCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
		}
		item.Price = domain.Money{Amount: priceAmount, Currency: parsedCurrency}

		items = append(items, item)
	}

	return items, rows.Err()
}
