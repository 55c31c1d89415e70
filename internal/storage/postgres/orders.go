package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

const orderColumns = `id, user_id, status, total, shipping_cost, address_id, created_at, updated_at`

const (
	decrementStockQuery = `UPDATE products p
                           SET stock = p.stock - i.quantity, updated_at = NOW()
                           FROM order_items i
                           WHERE i.order_id = $1 AND p.id = i.product_id`
	restoreStockQuery = `UPDATE products p
                         SET stock = p.stock + i.quantity, updated_at = NOW()
                         FROM order_items i
                         WHERE i.order_id = $1 AND p.id = i.product_id`
	insertNotificationQuery = `INSERT INTO notifications (id, user_id, order_id, message)
                               VALUES ($1, $2, $3, $4)
                               RETURNING created_at`
)

// --- OrderRepository implementation ---

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	if order.Items, err = loadItems(ctx, r.storage.pool, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// List returns every order, optionally narrowed to one status.
func (r *orderRepository) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if status == "" {
		return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	}
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE status=$1 ORDER BY created_at DESC`, status)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) TransitionStatus(ctx context.Context, orderID string, decide repository.DecideFunc) (*model.Transition, error) {
	const (
		lockQuery   = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`
	)

	var result *model.Transition
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := scanOrder(tx.QueryRow(ctx, lockQuery, orderID))
		if err != nil {
			return notFound(err)
		}

		change, err := decide(*order)
		if err != nil || change == nil {
			return err
		}

		from := order.Status
		if err := tx.QueryRow(ctx, updateQuery, change.To, order.ID).Scan(&order.UpdatedAt); err != nil {
			return err
		}
		order.Status = change.To

		switch change.Stock {
		case model.StockDecrement:
			if _, err := tx.Exec(ctx, decrementStockQuery, order.ID); err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
		case model.StockRestore:
			if _, err := tx.Exec(ctx, restoreStockQuery, order.ID); err != nil {
				return fmt.Errorf("restore stock: %w", err)
			}
		}

		notification, err := insertNotification(ctx, tx, order.UserID, change.Message, &order.ID)
		if err != nil {
			return err
		}
		if order.Items, err = loadItems(ctx, tx, order.ID); err != nil {
			return err
		}

		result = &model.Transition{Order: *order, From: from, Notification: *notification}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func insertNotification(ctx context.Context, q querier, userID, message string, orderID *string) (*model.Notification, error) {
	n := model.Notification{ID: uuid.NewString(), UserID: userID, OrderID: orderID, Message: message}
	if err := q.QueryRow(ctx, insertNotificationQuery, n.ID, n.UserID, n.OrderID, n.Message).Scan(&n.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return &n, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.ShippingCost, &o.AddressID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func loadItems(ctx context.Context, q querier, orderID string) ([]model.OrderItem, error) {
	const query = `SELECT i.id, i.order_id, i.product_id, p.name, i.quantity, i.unit_price
                   FROM order_items i JOIN products p ON p.id = i.product_id
                   WHERE i.order_id=$1 ORDER BY p.name`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
