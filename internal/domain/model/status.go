package model

import (
	"strings"
	"time"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

// manualNext lists transitions an admin or the owner may request by hand.
// PENDING -> PROCESSING only happens through a settled payment.
var manualNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusCanceled: true},
	OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCompleted: true, OrderStatusCanceled: true},
	OrderStatusShipped:    {OrderStatusCompleted: true},
	OrderStatusCompleted:  {},
	OrderStatusCanceled:   {},
}

// CanTransition reports whether a manual update from one status to another is legal.
func CanTransition(from, to OrderStatus) bool {
	return manualNext[from][to]
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

// ParseManualStatus accepts only the statuses a manual update may set.
func ParseManualStatus(raw string) (OrderStatus, bool) {
	switch s := OrderStatus(strings.TrimSpace(raw)); s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusCompleted, OrderStatusCanceled:
		return s, true
	default:
		return "", false
	}
}

// StockEffect is the inventory side effect applied together with a status change.
type StockEffect int

const (
	StockUnchanged StockEffect = iota
	StockDecrement
	StockRestore
)

// StatusChange is a decided transition that storage applies atomically.
type StatusChange struct {
	To      OrderStatus
	Stock   StockEffect
	Message string
}

// Transition is the committed outcome of a status change.
type Transition struct {
	Order        Order
	From         OrderStatus
	Notification Notification
}

// StatusSnapshot is the cached view of an order status.
type StatusSnapshot struct {
	OrderID   string      `json:"orderId"`
	UserID    string      `json:"userId"`
	Status    OrderStatus `json:"status"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Snapshot returns the cacheable status view of the order.
func (o Order) Snapshot() StatusSnapshot {
	return StatusSnapshot{OrderID: o.ID, UserID: o.UserID, Status: o.Status, UpdatedAt: o.UpdatedAt}
}
