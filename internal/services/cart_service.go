package services

import (
	"errors"
	"fmt"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
)

// CartService handles business logic for a user's cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	settings    *SettingsService
	events      EventPublisher
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, settings *SettingsService, events EventPublisher) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		settings:    settings,
		events:      events,
	}
}

// GetCart retrieves all cart items for a user with products joined.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}

// AddToCart adds a product to the user's cart. If the product is already in
// the cart the existing line's quantity is incremented by the given amount
// instead of creating a duplicate row. Returns the resulting line with its
// product joined. Quantities below 1 default to 1.
func (s *CartService) AddToCart(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to add product %s to cart: %w", productID, err)
	}
	if product.Stock < quantity {
		return nil, fmt.Errorf("product %s (requested %d, available %d): %w",
			product.Name, quantity, product.Stock, ErrOutOfStock)
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	switch {
	case err == nil:
		if err := s.cartRepo.UpdateQuantity(userID, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
		s.notifyChanged(userID)
		return s.cartRepo.GetByID(userID, existing.ID)
	case errors.Is(err, repositories.ErrNotFound):
		item := &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
		s.notifyChanged(userID)
		return s.cartRepo.GetByID(userID, item.ID)
	default:
		return nil, err
	}
}

// UpdateQuantity sets the quantity of a cart line. Quantities below 1 are
// rejected with ErrInvalidQuantity and nothing is mutated.
func (s *CartService) UpdateQuantity(userID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := s.cartRepo.UpdateQuantity(userID, itemID, quantity); err != nil {
		return nil, err
	}
	s.notifyChanged(userID)
	return s.cartRepo.GetByID(userID, itemID)
}

// RemoveFromCart deletes a single cart line.
func (s *CartService) RemoveFromCart(userID, itemID string) error {
	if err := s.cartRepo.Delete(userID, itemID); err != nil {
		return err
	}
	s.notifyChanged(userID)
	return nil
}

// ClearCart deletes every cart line of a user.
func (s *CartService) ClearCart(userID string) error {
	if err := s.cartRepo.ClearByUser(userID); err != nil {
		return err
	}
	s.notifyChanged(userID)
	return nil
}

// GetCartTotals computes the cart summary: item count is the sum of line
// quantities, subtotal uses discounted unit prices, and the delivery fee
// comes from the delivery settings (waived above the free-delivery threshold
// and for empty carts).
func (s *CartService) GetCartTotals(userID string) (models.CartTotals, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return models.CartTotals{}, err
	}

	var totals models.CartTotals
	for _, item := range items {
		totals.ItemCount += item.Quantity
		if item.Product != nil {
			totals.Subtotal += float64(item.Quantity) * item.Product.EffectivePrice()
		}
	}

	if totals.ItemCount > 0 {
		totals.DeliveryFee = s.deliveryFee(totals.Subtotal)
	}
	totals.Total = totals.Subtotal + totals.DeliveryFee
	return totals, nil
}

func (s *CartService) deliveryFee(subtotal float64) float64 {
	if s.settings == nil {
		return 0
	}
	ds, err := s.settings.DeliverySettings()
	if err != nil {
		// Totals stay usable without a fee rather than failing the whole read.
		return 0
	}
	if ds.FreeAbove > 0 && subtotal >= ds.FreeAbove {
		return 0
	}
	return ds.Fee
}

func (s *CartService) notifyChanged(userID string) {
	publishEvent(s.events, KeyCartChanged, map[string]string{"user_id": userID})
}
