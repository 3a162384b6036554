package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes. All routes assume AuthRequired
// already ran and user_id is in locals.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Get("/totals", h.HandleGetTotals)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClear)
}

// HandleGetCart returns all cart items with products joined.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	items, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"items": items})
}

// HandleGetTotals returns the cart summary.
func (h *CartHandler) HandleGetTotals(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	totals, err := h.service.GetCartTotals(userID)
	if err != nil {
		log.Printf("Error getting cart totals for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute cart totals",
			"error":   err.Error(),
		})
	}
	return c.JSON(totals)
}

// AddItemRequest represents the body for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

// HandleAddItem adds a product to the cart, incrementing the quantity when
// the product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	item, err := h.service.AddToCart(userID, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart for user %s: %v", req.ProductID, userID, err)
		if errors.Is(err, services.ErrOutOfStock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Product is out of stock",
				"error":   err.Error(),
			})
		}
		return notFoundOrInternal(c, err, "Could not add item to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateQuantityRequest represents the body for a quantity change.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// HandleUpdateQuantity sets the quantity of a cart line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	itemID := c.Params("id")

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	item, err := h.service.UpdateQuantity(userID, itemID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Quantity must be at least 1",
				"error":   err.Error(),
			})
		}
		log.Printf("Error updating cart item %s for user %s: %v", itemID, userID, err)
		return notFoundOrInternal(c, err, "Could not update cart item")
	}
	return c.JSON(item)
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.service.RemoveFromCart(userID, itemID); err != nil {
		log.Printf("Error removing cart item %s for user %s: %v", itemID, userID, err)
		return notFoundOrInternal(c, err, "Could not remove cart item")
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}

// HandleClear empties the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	if err := h.service.ClearCart(userID); err != nil {
		log.Printf("Error clearing cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
