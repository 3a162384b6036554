package repositories

import (
	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// CartRepository defines the interface for cart data access.
// All reads return cart items with their product joined.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	GetByID(userID, itemID string) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(userID, itemID string, quantity int) error
	// Upsert inserts a cart line or, if the user already has one for the
	// product, increments its quantity by the given amount.
	Upsert(userID, productID string, quantity int) error
	Delete(userID, itemID string) error
	ClearByUser(userID string) error
}
