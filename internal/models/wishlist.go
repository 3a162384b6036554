package models

import "time"

// WishlistItem represents a product a user has saved for later.
// A user holds at most one row per product. Hard-deleted on removal.
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_product;type:varchar(36)" validate:"required"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_wishlist_user_product;type:varchar(36)" validate:"required"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
}
