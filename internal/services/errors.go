package services

import "errors"

// Sentinel errors callers are expected to branch on. Everything else is
// wrapped with fmt.Errorf and context.
var (
	// ErrInvalidQuantity is returned when a cart quantity below 1 is requested.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrOutOfStock is returned when a product cannot cover the requested quantity.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrCartEmpty is returned when an order is placed over an empty cart.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrNoChanges is returned when an order status update targets the status
	// the order already has; the store is not touched in that case.
	ErrNoChanges = errors.New("no changes")
	// ErrCouponInvalid is returned for unknown, expired, exhausted or inactive coupons.
	ErrCouponInvalid = errors.New("coupon is not valid")
	// ErrCategoryInUse is returned when deleting a category that still has products.
	ErrCategoryInUse = errors.New("category still has products")
)
