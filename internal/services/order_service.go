package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	offerRepo   repositories.OfferRepository
	settings    *SettingsService
	events      EventPublisher
	now         func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, offerRepo repositories.OfferRepository, settings *SettingsService, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		offerRepo:   offerRepo,
		settings:    settings,
		events:      events,
		now:         time.Now,
	}
}

// PlaceOrderRequest carries checkout details supplied by the customer.
type PlaceOrderRequest struct {
	AddressID     string `json:"address_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card cod upi"`
	CouponCode    string `json:"coupon_code" validate:"omitempty,min=3,max=40"`
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves a user's orders.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder places an order from the user's current cart: validates stock,
// snapshots discounted prices, applies the coupon if one was given, stamps
// the delivery fee from settings, decrements stock and clears the cart.
func (s *OrderService) CreateOrder(userID string, req PlaceOrderRequest) (*models.Order, error) {
	cartItems, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for order: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	var subtotal float64
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	products := make([]*models.Product, 0, len(cartItems))

	for _, item := range cartItems {
		product := item.Product
		if product == nil {
			product, err = s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, fmt.Errorf("product %s in cart: %w", item.ProductID, err)
			}
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("product %s (requested %d, available %d): %w",
				product.Name, item.Quantity, product.Stock, ErrOutOfStock)
		}

		price := product.EffectivePrice()
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Unit:      product.Unit,
			Quantity:  item.Quantity,
			Price:     price,
		})
		subtotal += price * float64(item.Quantity)
		products = append(products, product)
	}

	var discount float64
	var couponCode string
	if req.CouponCode != "" {
		offer, err := s.validateCoupon(req.CouponCode)
		if err != nil {
			return nil, err
		}
		discount = subtotal * offer.DiscountPercent / 100
		couponCode = offer.Code
		if err := s.offerRepo.IncrementUsage(offer.ID); err != nil {
			return nil, fmt.Errorf("failed to apply coupon %s: %w", offer.Code, err)
		}
	}

	deliveryFee := s.deliveryFee(subtotal)

	order := &models.Order{
		UserID:        userID,
		Items:         orderItems,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Discount:      discount,
		TotalAmount:   subtotal - discount + deliveryFee,
		Status:        models.OrderStatusPending,
		AddressID:     req.AddressID,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    couponCode,
		CreatedAt:     s.now(),
		UpdatedAt:     s.now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// Stock decrement and cart clearing happen after the order row exists;
	// a failure here leaves the order placed, which matches what the
	// storefront treats as authoritative.
	for i, item := range cartItems {
		products[i].Stock -= item.Quantity
		if err := s.productRepo.Update(products[i]); err != nil {
			return nil, fmt.Errorf("failed to update stock for product %s: %w", products[i].ID, err)
		}
	}
	if err := s.cartRepo.ClearByUser(userID); err != nil {
		return nil, fmt.Errorf("order %s placed but cart not cleared: %w", order.ID, err)
	}

	publishEvent(s.events, KeyOrderCreated, map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})
	publishEvent(s.events, KeyCartChanged, map[string]string{"user_id": userID})

	return order, nil
}

// UpdateStatus moves an order to a new status. The status must be one of the
// five known values; no transition graph is enforced beyond that. Updating to
// the status the order already has is a no-op that returns ErrNoChanges
// without touching the store. Otherwise the current row is read first, the
// new status is written together with a fresh updated_at, and the update
// fails if the row disappeared in between.
func (s *OrderService) UpdateStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, ErrNoChanges
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	order.Status = status
	order.UpdatedAt = s.now()

	publishEvent(s.events, KeyOrderStatusChanged, map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   status,
	})

	return order, nil
}

func (s *OrderService) validateCoupon(code string) (*models.Offer, error) {
	offer, err := s.offerRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("coupon %s: %w", code, ErrCouponInvalid)
		}
		return nil, err
	}
	if !offer.Usable(s.now()) {
		return nil, fmt.Errorf("coupon %s: %w", code, ErrCouponInvalid)
	}
	return offer, nil
}

func (s *OrderService) deliveryFee(subtotal float64) float64 {
	if s.settings == nil {
		return 0
	}
	ds, err := s.settings.DeliverySettings()
	if err != nil {
		return 0
	}
	if ds.FreeAbove > 0 && subtotal >= ds.FreeAbove {
		return 0
	}
	return ds.Fee
}
