package models

import "time"

// CartItem represents a single product line in a user's cart.
// A user holds at most one row per product; repeated adds increment Quantity.
// Hard-deleted on removal so the unique index never blocks a re-add.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartTotals summarizes a cart for display and checkout.
type CartTotals struct {
	ItemCount   int     `json:"item_count"` // sum of quantities across lines
	Subtotal    float64 `json:"subtotal"`   // discounted unit prices times quantities
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}
