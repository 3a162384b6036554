package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetByUser retrieves all wishlist items for a user with products joined.
func (r *GORMWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByUserAndProduct retrieves the user's wishlist entry for a product, if any.
func (r *GORMWishlistRepository) GetByUserAndProduct(userID, productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.Preload("Product").
		First(&item, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist item for product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist item for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create inserts a wishlist entry. Re-saving an already wishlisted product is
// a no-op thanks to the unique index on (user_id, product_id).
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// Delete removes a wishlist entry scoped to its owner.
func (r *GORMWishlistRepository) Delete(userID, itemID string) error {
	res := r.db.Where("user_id = ?", userID).Delete(&models.WishlistItem{}, "id = ?", itemID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist item with ID %s for deletion: %w", itemID, ErrNotFound)
	}
	return nil
}

// ClearByUser removes every wishlist entry of a user.
func (r *GORMWishlistRepository) ClearByUser(userID string) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.WishlistItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear wishlist for user %s: %w", userID, err)
	}
	return nil
}
