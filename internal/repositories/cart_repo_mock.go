package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Product joins are resolved against the given product repository.
type MockCartRepository struct {
	items    map[string]models.CartItem
	products ProductRepository
	mu       sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository(products ProductRepository) *MockCartRepository {
	return &MockCartRepository{
		items:    make(map[string]models.CartItem),
		products: products,
	}
}

func (r *MockCartRepository) withProduct(item models.CartItem) models.CartItem {
	if r.products != nil {
		if p, err := r.products.GetByID(item.ProductID); err == nil {
			item.Product = p
		}
	}
	return item
}

// GetByUser returns all cart items for a user.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, r.withProduct(item))
		}
	}
	return out, nil
}

// GetByID returns a cart item scoped to its owner.
func (r *MockCartRepository) GetByID(userID, itemID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return nil, fmt.Errorf("cart item with ID %s: %w", itemID, ErrNotFound)
	}
	item = r.withProduct(item)
	return &item, nil
}

// GetByUserAndProduct returns the user's cart line for a product, if any.
func (r *MockCartRepository) GetByUserAndProduct(userID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			item = r.withProduct(item)
			return &item, nil
		}
	}
	return nil, fmt.Errorf("cart item for product %s: %w", productID, ErrNotFound)
}

// Create adds a new cart line.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

// UpdateQuantity sets the quantity of an existing cart line.
func (r *MockCartRepository) UpdateQuantity(userID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return fmt.Errorf("cart item with ID %s for update: %w", itemID, ErrNotFound)
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	r.items[itemID] = item
	return nil
}

// Upsert inserts a cart line or increments the existing one for the product.
func (r *MockCartRepository) Upsert(userID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			item.Quantity += quantity
			item.UpdatedAt = time.Now()
			r.items[id] = item
			return nil
		}
	}
	item := models.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.items[item.ID] = item
	return nil
}

// Delete removes a cart line scoped to its owner.
func (r *MockCartRepository) Delete(userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok || item.UserID != userID {
		return fmt.Errorf("cart item with ID %s for deletion: %w", itemID, ErrNotFound)
	}
	delete(r.items, itemID)
	return nil
}

// ClearByUser removes every cart line of a user.
func (r *MockCartRepository) ClearByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}
