package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/panganku/internal/domain/errors"
	"github.com/polkiloo/panganku/internal/domain/model"
	"github.com/polkiloo/panganku/internal/domain/repository"
)

// OrderUseCase drives the order status state machine.
type OrderUseCase struct {
	orders   repository.OrderRepository
	notifier Notifier
	cache    StatusCache
	verifier *SignatureVerifier
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	notifier Notifier,
	cache StatusCache,
	verifier *SignatureVerifier,
	logger *slog.Logger,
) *OrderUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderUseCase{orders: orders, notifier: notifier, cache: cache, verifier: verifier, logger: logger}
}

// HandlePaymentNotification applies a gateway webhook. It returns nil transition when
// the notification did not change the order, e.g. a duplicate settlement.
func (u *OrderUseCase) HandlePaymentNotification(ctx context.Context, n model.PaymentNotification) (*model.Transition, error) {
	if n.OrderID == "" || n.TransactionStatus == "" {
		return nil, domainErrors.ErrValidation
	}
	if err := u.verifier.Verify(n); err != nil {
		u.logger.Warn("payment notification rejected", slog.String("order_id", n.OrderID))
		return nil, err
	}

	change, ok := n.TransactionStatus.Outcome()
	if !ok {
		if _, err := u.orders.GetByID(ctx, n.OrderID); err != nil {
			return nil, err
		}
		u.logger.Info("payment notification ignored",
			slog.String("order_id", n.OrderID),
			slog.String("transaction_status", string(n.TransactionStatus)))
		return nil, nil
	}

	tr, err := u.orders.TransitionStatus(ctx, n.OrderID, func(order model.Order) (*model.StatusChange, error) {
		if order.Status != model.OrderStatusPending {
			return nil, nil
		}
		c := change
		c.Message = statusMessage(order.ID, c.To)
		return &c, nil
	})
	if err != nil {
		return nil, err
	}
	if tr == nil {
		u.logger.Info("payment notification for settled order",
			slog.String("order_id", n.OrderID),
			slog.String("transaction_status", string(n.TransactionStatus)))
		return nil, nil
	}

	u.committed(ctx, tr)
	return tr, nil
}

// UpdateStatus applies a manual admin status change.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID, rawStatus string) (*model.Transition, error) {
	return u.updateStatus(ctx, orderID, rawStatus, "")
}

// UpdateOwnStatus applies a manual status change to an order owned by userID.
// Orders of other users are reported as not found.
func (u *OrderUseCase) UpdateOwnStatus(ctx context.Context, userID, orderID, rawStatus string) (*model.Transition, error) {
	if userID == "" {
		return nil, domainErrors.ErrForbidden
	}
	return u.updateStatus(ctx, orderID, rawStatus, userID)
}

func (u *OrderUseCase) updateStatus(ctx context.Context, orderID, rawStatus, ownerID string) (*model.Transition, error) {
	to, ok := model.ParseManualStatus(rawStatus)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}

	tr, err := u.orders.TransitionStatus(ctx, orderID, func(order model.Order) (*model.StatusChange, error) {
		if ownerID != "" && order.UserID != ownerID {
			return nil, domainErrors.ErrNotFound
		}
		if !model.CanTransition(order.Status, to) {
			return nil, fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, order.Status, to)
		}
		change := &model.StatusChange{To: to, Stock: model.StockUnchanged, Message: statusMessage(order.ID, to)}
		if order.Status == model.OrderStatusProcessing && to == model.OrderStatusCanceled {
			change.Stock = model.StockRestore
		}
		return change, nil
	})
	if err != nil {
		return nil, err
	}

	u.committed(ctx, tr)
	return tr, nil
}

// committed runs the best-effort side effects of a transition.
func (u *OrderUseCase) committed(ctx context.Context, tr *model.Transition) {
	u.logger.Info("order status changed",
		slog.String("order_id", tr.Order.ID),
		slog.String("from", string(tr.From)),
		slog.String("to", string(tr.Order.Status)))

	if u.cache != nil {
		if err := u.cache.Set(ctx, tr.Order.Snapshot()); err != nil {
			u.logger.Warn("status cache update failed", slog.String("order_id", tr.Order.ID), slog.Any("error", err))
		}
	}
	u.notifier.Notify(model.OrderUpdated(*tr))
}

// Get returns an order with items. Non-admin callers only see their own orders.
func (u *OrderUseCase) Get(ctx context.Context, principal model.Principal, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && order.UserID != principal.UserID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// ListByUser returns the order history of a user, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// List returns all orders, optionally filtered by status.
func (u *OrderUseCase) List(ctx context.Context, status string) ([]model.Order, error) {
	s := model.OrderStatus(status)
	switch s {
	case "", model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusCompleted, model.OrderStatusCanceled:
	default:
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.List(ctx, s)
}

// Status looks the order status up in the cache first and falls back to storage.
func (u *OrderUseCase) Status(ctx context.Context, principal model.Principal, orderID string) (*model.StatusSnapshot, error) {
	if u.cache != nil {
		snapshot, err := u.cache.Get(ctx, orderID)
		if err != nil {
			u.logger.Warn("status cache read failed", slog.String("order_id", orderID), slog.Any("error", err))
		}
		if snapshot != nil {
			if !principal.IsAdmin() && snapshot.UserID != principal.UserID {
				return nil, domainErrors.ErrNotFound
			}
			return snapshot, nil
		}
	}

	order, err := u.Get(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}
	snapshot := order.Snapshot()
	if u.cache != nil {
		if err := u.cache.Set(ctx, snapshot); err != nil {
			u.logger.Warn("status cache update failed", slog.String("order_id", orderID), slog.Any("error", err))
		}
	}
	return &snapshot, nil
}

func statusMessage(orderID string, status model.OrderStatus) string {
	ref := orderID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	switch status {
	case model.OrderStatusProcessing:
		return fmt.Sprintf("Pembayaran pesanan #%s diterima, pesanan sedang diproses.", ref)
	case model.OrderStatusShipped:
		return fmt.Sprintf("Pesanan #%s sedang dikirim.", ref)
	case model.OrderStatusCompleted:
		return fmt.Sprintf("Pesanan #%s telah selesai.", ref)
	case model.OrderStatusCanceled:
		return fmt.Sprintf("Pesanan #%s dibatalkan.", ref)
	default:
		return fmt.Sprintf("Status pesanan #%s: %s.", ref, status)
	}
}
