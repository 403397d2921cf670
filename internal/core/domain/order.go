package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return OrderStatus(s), nil
	}
	return "", ErrBadRequest
}

type Order struct {
	ID          uint64
	UserID      uint64
	TotalAmount decimal.Decimal
	Status      OrderStatus
	CreatedAt   time.Time
	Items       []OrderItem
}

// OrderItem keeps the price and tax rate the product had when the
// order was placed. Later catalog changes never touch it.
type OrderItem struct {
	ID        uint64
	OrderID   uint64
	ProductID uint64
	Quantity  int
	UnitPrice decimal.Decimal
	TaxRate   decimal.Decimal
}

// OrderItemInput is one requested (product, quantity) line of a new order.
type OrderItemInput struct {
	ProductID uint64
	Quantity  int
}
