package services

import (
	"fmt"
	"log"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
)

// WishlistService handles business logic for a user's wishlist.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	cartRepo     repositories.CartRepository
	productRepo  repositories.ProductRepository
	events       EventPublisher
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, events EventPublisher) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		events:       events,
	}
}

// GetWishlist retrieves all wishlist items for a user with products joined.
func (s *WishlistService) GetWishlist(userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetByUser(userID)
}

// AddToWishlist saves a product to the user's wishlist. Saving a product
// that is already wishlisted returns the existing entry.
func (s *WishlistService) AddToWishlist(userID, productID string) (*models.WishlistItem, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, fmt.Errorf("failed to add product %s to wishlist: %w", productID, err)
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, err
	}
	s.notifyChanged(userID)
	return s.wishlistRepo.GetByUserAndProduct(userID, productID)
}

// RemoveFromWishlist deletes a single wishlist entry.
func (s *WishlistService) RemoveFromWishlist(userID, itemID string) error {
	if err := s.wishlistRepo.Delete(userID, itemID); err != nil {
		return err
	}
	s.notifyChanged(userID)
	return nil
}

// MoveAllToCart moves every wishlist item into the cart, one quantity each.
// Items are processed independently: a failure on one item is collected and
// the remaining items are still attempted. Returns the number of items moved
// and the list of per-item move errors, so moved plus the error count always
// equals the wishlist size. Successfully moved items are removed from the
// wishlist.
func (s *WishlistService) MoveAllToCart(userID string) (int, []error) {
	items, err := s.wishlistRepo.GetByUser(userID)
	if err != nil {
		return 0, []error{err}
	}

	moved := 0
	var errs []error
	for _, item := range items {
		if err := s.cartRepo.Upsert(userID, item.ProductID, 1); err != nil {
			errs = append(errs, fmt.Errorf("product %s: %w", item.ProductID, err))
			continue
		}
		// Dropping the wishlist entry is best effort: the item already made
		// it into the cart, which is what the caller asked for, so this
		// still counts as moved and is only logged.
		if err := s.wishlistRepo.Delete(userID, item.ID); err != nil {
			log.Printf("Product %s moved to cart for user %s but not removed from wishlist: %v", item.ProductID, userID, err)
		}
		moved++
	}

	if moved > 0 {
		s.notifyChanged(userID)
		publishEvent(s.events, KeyCartChanged, map[string]string{"user_id": userID})
	}
	return moved, errs
}

func (s *WishlistService) notifyChanged(userID string) {
	publishEvent(s.events, KeyWishlistChanged, map[string]string{"user_id": userID})
}
