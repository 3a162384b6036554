package models

import (
	"time"
)

// OrderStatus is the fixed status vocabulary for orders.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being prepared for dispatch
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the order
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by customer or admin
)

// Valid reports whether s is one of the five known statuses.
// No transition graph is enforced here: any status may be set from any other.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// StatusMeta is display metadata for an order status.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"` // CSS color class for admin/storefront badges
	Icon  string `json:"icon"`  // icon name for the status badge
}

var statusMeta = map[OrderStatus]StatusMeta{
	OrderStatusPending:    {Label: "Pending", Color: "bg-yellow-100 text-yellow-800", Icon: "clock"},
	OrderStatusProcessing: {Label: "Processing", Color: "bg-blue-100 text-blue-800", Icon: "package"},
	OrderStatusShipped:    {Label: "Shipped", Color: "bg-indigo-100 text-indigo-800", Icon: "truck"},
	OrderStatusDelivered:  {Label: "Delivered", Color: "bg-green-100 text-green-800", Icon: "check-circle"},
	OrderStatusCancelled:  {Label: "Cancelled", Color: "bg-red-100 text-red-800", Icon: "x-circle"},
}

// MetaForStatus returns the display metadata for a status. Unknown statuses
// fall back to the pending badge so rendering never breaks on bad data.
func MetaForStatus(s OrderStatus) StatusMeta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return statusMeta[OrderStatusPending]
}

// AllStatuses returns the known statuses in workflow order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	}
}

// OrderItem represents a single product line within an order.
// Price is the discounted unit price snapshotted at order time.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Name      string  `json:"name"` // product name at the time of order
	Unit      string  `json:"unit"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a customer order.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal      float64     `json:"subtotal"`
	DeliveryFee   float64     `json:"delivery_fee"`
	Discount      float64     `json:"discount"` // amount taken off by the applied coupon
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	AddressID     string      `json:"address_id" gorm:"type:varchar(36)"`
	PaymentMethod string      `json:"payment_method"` // e.g. "card", "cod"
	CouponCode    string      `json:"coupon_code,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
