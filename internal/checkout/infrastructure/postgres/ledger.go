package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/checkout/domain"
	"github.com/Lexv0lk/checkout-store/internal/pkg/database"
	"github.com/Lexv0lk/checkout-store/internal/pkg/money"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const idempotencyConstraint = "orders_user_idempotency_key"

const orderColumns = `id::text, user_id::text, freight_cents, total_cents, payment_method, charge_id, status,
	COALESCE(idempotency_key, ''), request_fingerprint, created_at`

type OrderLedger struct {
	querier   database.Querier
	txManager database.TxManager
}

func NewOrderLedger(querier database.Querier, txManager database.TxManager) *OrderLedger {
	return &OrderLedger{
		querier:   querier,
		txManager: txManager,
	}
}

func (l *OrderLedger) CommitOrder(ctx context.Context, order domain.Order) error {
	return l.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		insertOrderSQL := `INSERT INTO orders (id, user_id, freight_cents, total_cents, payment_method, charge_id, status,
			idempotency_key, request_fingerprint, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`

		_, err := executor.Exec(ctx, insertOrderSQL,
			order.ID, order.UserID, int64(order.Freight), int64(order.Total), string(order.PaymentMethod),
			order.ChargeID, string(order.Status), order.IdempotencyKey, order.RequestFingerprint, order.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == idempotencyConstraint {
				return &domain.DuplicateOrderError{Key: order.IdempotencyKey}
			}

			return fmt.Errorf("failed to insert order: %w", err)
		}

		insertItemSQL := `INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents) VALUES ($1, $2, $3, $4)`
		for _, item := range order.Items {
			_, err = executor.Exec(ctx, insertItemSQL, order.ID, item.ProductID, item.Quantity, int64(item.UnitPrice))
			if err != nil {
				return fmt.Errorf("failed to insert order item %d: %w", item.ProductID, err)
			}
		}

		return nil
	})
}

func (l *OrderLedger) FindByIdempotencyKey(ctx context.Context, userID, key string) (domain.Order, bool, error) {
	findOrderSQL := `SELECT ` + orderColumns + ` FROM orders WHERE user_id::text = $1 AND idempotency_key = $2`

	return l.findOrder(ctx, findOrderSQL, userID, key)
}

func (l *OrderLedger) FindOrder(ctx context.Context, orderID string) (domain.Order, bool, error) {
	findOrderSQL := `SELECT ` + orderColumns + ` FROM orders WHERE id::text = $1`

	return l.findOrder(ctx, findOrderSQL, orderID)
}

func (l *OrderLedger) findOrder(ctx context.Context, querySQL string, args ...any) (domain.Order, bool, error) {
	order, err := scanOrder(l.querier.QueryRow(ctx, querySQL, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, false, nil
		}

		return domain.Order{}, false, fmt.Errorf("failed to find order: %w", err)
	}

	order.Items, err = l.getOrderItems(ctx, order.ID)
	if err != nil {
		return domain.Order{}, false, err
	}

	return order, true, nil
}

func (l *OrderLedger) getOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	findItemsSQL := `SELECT product_id, quantity, unit_price_cents FROM order_items WHERE order_id::text = $1 ORDER BY product_id`

	rows, err := l.querier.Query(ctx, findItemsSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var (
			item      domain.OrderItem
			unitPrice int64
		)

		if err := rows.Scan(&item.ProductID, &item.Quantity, &unitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.UnitPrice = money.Cents(unitPrice)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	return items, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order                 domain.Order
		freight, total        int64
		paymentMethod, status string
		createdAt             time.Time
	)

	err := row.Scan(&order.ID, &order.UserID, &freight, &total, &paymentMethod, &order.ChargeID, &status,
		&order.IdempotencyKey, &order.RequestFingerprint, &createdAt)
	if err != nil {
		return domain.Order{}, err
	}

	order.Freight = money.Cents(freight)
	order.Total = money.Cents(total)
	order.PaymentMethod = domain.PaymentMethod(paymentMethod)
	order.Status = domain.OrderStatus(status)
	order.CreatedAt = createdAt

	return order, nil
}
