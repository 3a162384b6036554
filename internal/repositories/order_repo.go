package repositories

import (
	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	// Deletion of orders is intentionally not supported; cancelled orders
	// keep their row with status "cancelled".
}
