package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// MockWishlistRepository is an in-memory implementation of WishlistRepository.
// Product joins are resolved against the given product repository.
type MockWishlistRepository struct {
	items    map[string]models.WishlistItem
	products ProductRepository
	mu       sync.RWMutex
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository(products ProductRepository) *MockWishlistRepository {
	return &MockWishlistRepository{
		items:    make(map[string]models.WishlistItem),
		products: products,
	}
}

func (r *MockWishlistRepository) withProduct(item models.WishlistItem) models.WishlistItem {
	if r.products != nil {
		if p, err := r.products.GetByID(item.ProductID); err == nil {
			item.Product = p
		}
	}
	return item
}

// GetByUser returns all wishlist items for a user.
func (r *MockWishlistRepository) GetByUser(userID string) ([]models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.WishlistItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, r.withProduct(item))
		}
	}
	return out, nil
}

// GetByUserAndProduct returns the user's wishlist entry for a product, if any.
func (r *MockWishlistRepository) GetByUserAndProduct(userID, productID string) (*models.WishlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			item = r.withProduct(item)
			return &item, nil
		}
	}
	return nil, fmt.Errorf("wishlist item for product %s: %w", productID, ErrNotFound)
}

// Create adds a wishlist entry; duplicates for the same product are ignored.
func (r *MockWishlistRepository) Create(item *models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			*item = existing
			return nil
		}
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

// Delete removes a wishlist entry scoped to its owner.
func (r *MockWishlistRepository) Delete(userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return fmt.Errorf("wishlist item with ID %s for deletion: %w", itemID, ErrNotFound)
	}
	delete(r.items, itemID)
	return nil
}

// ClearByUser removes every wishlist entry of a user.
func (r *MockWishlistRepository) ClearByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}
