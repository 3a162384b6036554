package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves all cart items for a user with products joined.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByID retrieves a single cart item scoped to its owner.
func (r *GORMCartRepository) GetByID(userID, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").
		First(&item, "id = ? AND user_id = ?", itemID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item with ID %s: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item %s: %w", itemID, err)
	}
	return &item, nil
}

// GetByUserAndProduct retrieves the user's cart line for a product, if any.
func (r *GORMCartRepository) GetByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").
		First(&item, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item for product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create inserts a new cart line.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing cart line.
func (r *GORMCartRepository) UpdateQuantity(userID, itemID string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s for update: %w", itemID, ErrNotFound)
	}
	return nil
}

// Upsert inserts a cart line, or increments the quantity of the existing line
// for the same (user, product) pair. The unique index on (user_id, product_id)
// makes the conflict target.
func (r *GORMCartRepository) Upsert(userID, productID string, quantity int) error {
	item := models.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart item for product %s: %w", productID, err)
	}
	return nil
}

// Delete removes a cart line scoped to its owner.
func (r *GORMCartRepository) Delete(userID, itemID string) error {
	res := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}, "id = ?", itemID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item with ID %s for deletion: %w", itemID, ErrNotFound)
	}
	return nil
}

// ClearByUser removes every cart line of a user.
func (r *GORMCartRepository) ClearByUser(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
