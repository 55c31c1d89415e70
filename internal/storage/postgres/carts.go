package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
)

const lockPendingQuery = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 AND status='PENDING' FOR UPDATE`

// --- CartRepository implementation ---

func (r *cartRepository) GetPending(ctx context.Context, userID string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 AND status='PENDING'`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFound(err)
	}
	if order.Items, err = loadItems(ctx, r.storage.pool, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *cartRepository) AddItem(ctx context.Context, userID, productID string, quantity int, policy model.ShippingPolicy) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var product model.Product
		err := tx.QueryRow(ctx, `SELECT id, price, stock FROM products WHERE id=$1 FOR SHARE`, productID).
			Scan(&product.ID, &product.Price, &product.Stock)
		if err != nil {
			return notFound(err)
		}

		if order, err = lockOrCreatePending(ctx, tx, userID); err != nil {
			return err
		}

		var existing int
		err = tx.QueryRow(ctx, `SELECT quantity FROM order_items WHERE order_id=$1 AND product_id=$2`, order.ID, productID).Scan(&existing)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if existing+quantity > product.Stock {
			return domainErrors.ErrInsufficientStock
		}

		const upsert = `INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
                        VALUES ($1, $2, $3, $4, $5)
                        ON CONFLICT (order_id, product_id)
                        DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity, unit_price = EXCLUDED.unit_price`
		if _, err := tx.Exec(ctx, upsert, uuid.NewString(), order.ID, productID, quantity, product.Price); err != nil {
			return err
		}
		return recalculate(ctx, tx, order, policy)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// SetItemQuantity replaces the quantity of a cart line. A quantity of zero or less removes it.
func (r *cartRepository) SetItemQuantity(ctx context.Context, userID, itemID string, quantity int, policy model.ShippingPolicy) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		if order, err = scanOrder(tx.QueryRow(ctx, lockPendingQuery, userID)); err != nil {
			return notFound(err)
		}

		if quantity <= 0 {
			tag, err := tx.Exec(ctx, `DELETE FROM order_items WHERE id=$1 AND order_id=$2`, itemID, order.ID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrNotFound
			}
			return recalculate(ctx, tx, order, policy)
		}

		const stockQuery = `SELECT p.stock FROM order_items i JOIN products p ON p.id = i.product_id
                            WHERE i.id=$1 AND i.order_id=$2`
		var stock int
		if err := tx.QueryRow(ctx, stockQuery, itemID, order.ID).Scan(&stock); err != nil {
			return notFound(err)
		}
		if quantity > stock {
			return domainErrors.ErrInsufficientStock
		}
		if _, err := tx.Exec(ctx, `UPDATE order_items SET quantity=$1 WHERE id=$2`, quantity, itemID); err != nil {
			return err
		}
		return recalculate(ctx, tx, order, policy)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID, itemID string, policy model.ShippingPolicy) (*model.Order, error) {
	return r.SetItemQuantity(ctx, userID, itemID, 0, policy)
}

// Checkout binds a shipping address to the cart after checking it can be fulfilled.
// The order stays PENDING until the payment gateway settles it.
func (r *cartRepository) Checkout(ctx context.Context, userID, addressID string, policy model.ShippingPolicy) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		if order, err = scanOrder(tx.QueryRow(ctx, lockPendingQuery, userID)); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrEmptyCart
			}
			return err
		}

		var owned bool
		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM addresses WHERE id=$1 AND user_id=$2)`, addressID, userID).Scan(&owned)
		if err != nil {
			return err
		}
		if !owned {
			return domainErrors.ErrNotFound
		}

		const shortageQuery = `SELECT p.name FROM order_items i JOIN products p ON p.id = i.product_id
                               WHERE i.order_id=$1 AND i.quantity > p.stock LIMIT 1`
		var short string
		err = tx.QueryRow(ctx, shortageQuery, order.ID).Scan(&short)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", domainErrors.ErrInsufficientStock, short)
		case !errors.Is(err, pgx.ErrNoRows):
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET address_id=$1, updated_at=NOW() WHERE id=$2`, addressID, order.ID); err != nil {
			return err
		}
		order.AddressID = &addressID

		if err := recalculate(ctx, tx, order, policy); err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return domainErrors.ErrEmptyCart
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func lockOrCreatePending(ctx context.Context, tx pgx.Tx, userID string) (*model.Order, error) {
	order, err := scanOrder(tx.QueryRow(ctx, lockPendingQuery, userID))
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	const insert = `INSERT INTO orders (id, user_id, status) VALUES ($1, $2, 'PENDING') RETURNING created_at, updated_at`
	order = &model.Order{ID: uuid.NewString(), UserID: userID, Status: model.OrderStatusPending}
	if err := tx.QueryRow(ctx, insert, order.ID, userID).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		if errors.Is(mapWriteError(err), domainErrors.ErrAlreadyExists) {
			// A concurrent request created the cart first.
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return order, nil
}

// recalculate reloads the cart lines and stores subtotal plus ongkir as the order total.
func recalculate(ctx context.Context, tx pgx.Tx, order *model.Order, policy model.ShippingPolicy) error {
	items, err := loadItems(ctx, tx, order.ID)
	if err != nil {
		return err
	}
	order.Items = items
	order.ShippingCost = policy.Cost(order.Subtotal())
	order.Total = order.Subtotal().Add(order.ShippingCost)

	const update = `UPDATE orders SET total=$1, shipping_cost=$2, updated_at=NOW() WHERE id=$3 RETURNING updated_at`
	return tx.QueryRow(ctx, update, order.Total, order.ShippingCost, order.ID).Scan(&order.UpdatedAt)
}
