package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a purchase. The PENDING order of a user doubles as the cart.
type Order struct {
	ID           string
	UserID       string
	Status       OrderStatus
	Total        decimal.Decimal
	ShippingCost decimal.Decimal
	AddressID    *string
	Items        []OrderItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subtotal sums item lines without shipping.
func (o Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// OrderItem is one product line of an order with the unit price captured when added.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// LineTotal returns quantity times unit price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingPolicy computes ongkir for a cart subtotal.
type ShippingPolicy struct {
	FlatFee       decimal.Decimal
	FreeThreshold decimal.Decimal
}

// Cost returns the shipping fee. Empty carts ship for free and so do carts at or above the threshold.
func (p ShippingPolicy) Cost(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	if p.FreeThreshold.IsPositive() && subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}
	return p.FlatFee
}
