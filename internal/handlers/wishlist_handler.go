package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// WishlistHandler handles HTTP requests for the authenticated user's wishlist.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes. All routes assume
// AuthRequired already ran and user_id is in locals.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/items", h.HandleAddItem)
	wishlistRoutes.Delete("/items/:id", h.HandleRemoveItem)
	wishlistRoutes.Post("/move-to-cart", h.HandleMoveAllToCart)
}

// HandleGetWishlist returns all wishlist items with products joined.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	items, err := h.service.GetWishlist(userID)
	if err != nil {
		log.Printf("Error getting wishlist for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve wishlist",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"items": items})
}

// SaveItemRequest represents the body for saving a product.
type SaveItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// HandleAddItem saves a product to the wishlist.
func (h *WishlistHandler) HandleAddItem(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req SaveItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	item, err := h.service.AddToWishlist(userID, req.ProductID)
	if err != nil {
		log.Printf("Error adding product %s to wishlist for user %s: %v", req.ProductID, userID, err)
		return notFoundOrInternal(c, err, "Could not add item to wishlist")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleRemoveItem deletes a wishlist entry.
func (h *WishlistHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.service.RemoveFromWishlist(userID, itemID); err != nil {
		log.Printf("Error removing wishlist item %s for user %s: %v", itemID, userID, err)
		return notFoundOrInternal(c, err, "Could not remove wishlist item")
	}
	return c.JSON(fiber.Map{"message": "Item removed from wishlist"})
}

// HandleMoveAllToCart moves every wishlist item into the cart. Items that
// fail are reported individually; the response always includes the number
// that made it.
func (h *WishlistHandler) HandleMoveAllToCart(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	moved, errs := h.service.MoveAllToCart(userID)
	if len(errs) == 0 {
		return c.JSON(fiber.Map{
			"message": "All items moved to cart",
			"moved":   moved,
		})
	}

	errorMessages := make([]string, 0, len(errs))
	for _, err := range errs {
		errorMessages = append(errorMessages, err.Error())
	}
	log.Printf("Moved %d wishlist items to cart for user %s with %d failures", moved, userID, len(errs))
	return c.Status(fiber.StatusMultiStatus).JSON(fiber.Map{
		"message": "Some items could not be moved",
		"moved":   moved,
		"errors":  errorMessages,
	})
}
