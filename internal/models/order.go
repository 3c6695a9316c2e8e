package models

import (
	"fmt"
	"math"
	"slices"
	"time"

	"gorm.io/datatypes"
)

// Fulfillment types
const (
	OrderTypeDelivery = "delivery"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDineIn   = "dine-in"
)

// Payment methods and payment states
const (
	PaymentCard   = "card"
	PaymentCash   = "cash"
	PaymentPaypal = "paypal"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

var (
	OrderTypes      = []string{OrderTypeDelivery, OrderTypeTakeaway, OrderTypeDineIn}
	PaymentMethods  = []string{PaymentCard, PaymentCash, PaymentPaypal}
	PaymentStatuses = []string{PaymentPending, PaymentPaid, PaymentFailed}
)

// OrderItem is one line of an order. Items are copied by value so later menu edits do not rewrite history.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a storefront or dine-in order
type Order struct {
	Base
	OrderNumber         string                         `gorm:"uniqueIndex;size:16;not null" json:"orderNumber"`
	CustomerName        string                         `gorm:"not null" json:"customerName"`
	Email               string                         `gorm:"not null" json:"email"`
	Phone               string                         `gorm:"not null" json:"phone"`
	Address             string                         `gorm:"not null" json:"address"`
	Items               datatypes.JSONSlice[OrderItem] `gorm:"not null" json:"items"`
	Total               float64                        `gorm:"not null" json:"total"`
	Status              OrderStatus                    `gorm:"not null;default:pending;index" json:"status"`
	SpecialInstructions string                         `json:"specialInstructions,omitempty"`
	Type                string                         `gorm:"not null" json:"type"`
	Table               *int                           `json:"table,omitempty"`
	PaymentMethod       string                         `gorm:"not null" json:"paymentMethod"`
	PaymentStatus       string                         `gorm:"not null;default:pending" json:"paymentStatus"`
	CreatedAt           time.Time                      `gorm:"index" json:"createdAt"`
	UpdatedAt           time.Time                      `json:"updatedAt"`
}

// ItemsTotal sums price times quantity over the order lines, rounded to cents
func (o *Order) ItemsTotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return math.Round(sum*100) / 100
}

// CheckTable enforces that a table number is present exactly when the order is dine-in
func (o *Order) CheckTable() error {
	if o.Type == OrderTypeDineIn && o.Table == nil {
		return fmt.Errorf("table number is required for dine-in orders")
	}
	if o.Type != OrderTypeDineIn && o.Table != nil {
		return fmt.Errorf("table number is only allowed for dine-in orders")
	}
	return nil
}

// OrderSequence holds the last issued order counter of one day
type OrderSequence struct {
	Day     string `gorm:"primaryKey;size:6"`
	Counter int    `gorm:"not null"`
}

// FormatOrderNumber renders the YYMMDD prefix followed by an at least 3 digit counter
func FormatOrderNumber(day string, counter int) string {
	return fmt.Sprintf("%s%03d", day, counter)
}

// OrderDay returns the YYMMDD key of t in its own location
func OrderDay(t time.Time) string {
	return t.Format("060102")
}

func ValidOrderType(t string) bool     { return slices.Contains(OrderTypes, t) }
func ValidPaymentMethod(m string) bool { return slices.Contains(PaymentMethods, m) }
func ValidPaymentStatus(s string) bool { return slices.Contains(PaymentStatuses, s) }
