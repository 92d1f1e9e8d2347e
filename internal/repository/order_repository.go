package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bookverse/internal/domain"
	"github.com/nikolayk812/bookverse/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{pool: pool}, nil
}

// orderItemDoc is the stored shape of a frozen line item inside the
// order's items document.
type orderItemDoc struct {
	BookID        string          `json:"bookId"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	PriceAmount   decimal.Decimal `json:"priceAmount"`
	PriceCurrency string          `json:"priceCurrency"`
	Quantity      int             `json:"quantity"`
}

// CreateOrder writes both copies of the order and deletes the snapshotted
// line items from the owner's cart in one transaction. Either the order
// exists in both collections and the cart is emptied of exactly those
// items, or nothing happened.
func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.UserID == "" {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}
	if order.ID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("order ID is nil")
	}
	if len(order.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order has no items")
	}

	itemsJSON, err := json.Marshal(mapOrderItemsToDocs(order.Items))
	if err != nil {
		return domain.Order{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return withTx(ctx, r.pool, func(tx pgx.Tx) (domain.Order, error) {
		var createdAt time.Time
		err := tx.QueryRow(ctx, `
			INSERT INTO user_orders (user_id, id, user_name, user_email, items,
			                         total_amount, total_currency, status, payment_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at`,
			order.UserID, order.ID, order.UserName, order.UserEmail, itemsJSON,
			order.TotalPrice.Amount, order.TotalPrice.Currency.String(),
			order.Status, order.PaymentStatus).Scan(&createdAt)
		if err != nil {
			return domain.Order{}, fmt.Errorf("insert user_orders: %w", err)
		}

		// Both copies carry the same server-assigned timestamp.
		_, err = tx.Exec(ctx, `
			INSERT INTO orders (id, user_id, user_name, user_email, items,
			                    total_amount, total_currency, status, payment_status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			order.ID, order.UserID, order.UserName, order.UserEmail, itemsJSON,
			order.TotalPrice.Amount, order.TotalPrice.Currency.String(),
			order.Status, order.PaymentStatus, createdAt)
		if err != nil {
			return domain.Order{}, fmt.Errorf("insert orders: %w", err)
		}

		for _, item := range order.Items {
			_, err := tx.Exec(ctx, `
				DELETE FROM cart_items
				WHERE owner_id = $1 AND book_id = $2`,
				order.UserID, item.BookID)
			if err != nil {
				return domain.Order{}, fmt.Errorf("delete cart item %q: %w", item.BookID, err)
			}
		}

		order.CreatedAt = createdAt
		return order, nil
	})
}

// SetStatus updates the status on both copies or on neither. The pair
// never diverges.
func (r *orderRepository) SetStatus(ctx context.Context, orderID uuid.UUID, userID string, status domain.OrderStatus) error {
	if userID == "" {
		return fmt.Errorf("userID is empty")
	}

	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		tag, err := tx.Exec(ctx, `
			UPDATE orders SET status = $2 WHERE id = $1`, orderID, status)
		if err != nil {
			return zero, fmt.Errorf("update orders: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return zero, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
		}

		tag, err = tx.Exec(ctx, `
			UPDATE user_orders SET status = $3 WHERE user_id = $1 AND id = $2`,
			userID, orderID, status)
		if err != nil {
			return zero, fmt.Errorf("update user_orders: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return zero, fmt.Errorf("user order %s: %w", orderID, domain.ErrNotFound)
		}

		return zero, nil
	})

	return err
}

func (r *orderRepository) GetUserOrder(ctx context.Context, userID string, orderID uuid.UUID) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, user_name, user_email, items,
		       total_amount, total_currency, status, payment_status, created_at
		FROM user_orders
		WHERE user_id = $1 AND id = $2`, userID, orderID)

	return scanOrder(row, orderID)
}

func (r *orderRepository) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is empty")
	}

	return r.queryOrders(ctx, `
		SELECT id, user_id, user_name, user_email, items,
		       total_amount, total_currency, status, payment_status, created_at
		FROM user_orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, user_name, user_email, items,
		       total_amount, total_currency, status, payment_status, created_at
		FROM orders
		WHERE id = $1`, orderID)

	return scanOrder(row, orderID)
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, user_id, user_name, user_email, items,
		       total_amount, total_currency, status, payment_status, created_at
		FROM orders
		ORDER BY created_at DESC`)
}

func (r *orderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("scanOrder: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func scanOrder(row pgx.Row, orderID uuid.UUID) (domain.Order, error) {
	var (
		order         domain.Order
		itemsJSON     []byte
		totalAmount   decimal.Decimal
		totalCurrency string
	)

	err := row.Scan(&order.ID, &order.UserID, &order.UserName, &order.UserEmail, &itemsJSON,
		&totalAmount, &totalCurrency, &order.Status, &order.PaymentStatus, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("row.Scan: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(totalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", totalCurrency, err)
	}
	order.TotalPrice = domain.Money{Amount: totalAmount, Currency: parsedCurrency}

	var docs []orderItemDoc
	if err := json.Unmarshal(itemsJSON, &docs); err != nil {
		return domain.Order{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	order.Items, err = mapDocsToOrderItems(docs)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapDocsToOrderItems: %w", err)
	}

	return order, nil
}

func mapOrderItemsToDocs(items []domain.OrderItem) []orderItemDoc {
	docs := make([]orderItemDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, orderItemDoc{
			BookID:        item.BookID,
			Title:         item.Title,
			Author:        item.Author,
			PriceAmount:   item.Price.Amount,
			PriceCurrency: item.Price.Currency.String(),
			Quantity:      item.Quantity,
		})
	}
	return docs
}

func mapDocsToOrderItems(docs []orderItemDoc) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(docs))
	for _, doc := range docs {
		parsedCurrency, err := currency.ParseISO(doc.PriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", doc.PriceCurrency, err)
		}

		items = append(items, domain.OrderItem{
			BookID:   doc.BookID,
			Title:    doc.Title,
			Author:   doc.Author,
			Price:    domain.Money{Amount: doc.PriceAmount, Currency: parsedCurrency},
			Quantity: doc.Quantity,
		})
	}
	return items, nil
}
