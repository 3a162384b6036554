package repositories

import (
	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// WishlistRepository defines the interface for wishlist data access.
// All reads return wishlist items with their product joined.
type WishlistRepository interface {
	GetByUser(userID string) ([]models.WishlistItem, error)
	GetByUserAndProduct(userID, productID string) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Delete(userID, itemID string) error
	ClearByUser(userID string) error
}
