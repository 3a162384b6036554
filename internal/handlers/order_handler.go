package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the customer-facing order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Post("/", h.HandlePlaceOrder)
	orders.Get("/", h.HandleGetMyOrders)
	orders.Get("/statuses", h.HandleGetStatuses)
	orders.Get("/:id", h.HandleGetOrder)
}

// RegisterAdminRoutes registers the admin order routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetAllOrders)
	router.Patch("/orders/:id/status", h.HandleUpdateStatus)
}

// UpdateStatusRequest is the body of the admin status update.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandlePlaceOrder converts the caller's cart into an order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req services.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	order, err := h.service.CreateOrder(userID, req)
	if err != nil {
		log.Printf("Error placing order for user %s: %v", userID, err)
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart is empty",
			})
		case errors.Is(err, services.ErrOutOfStock):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "One or more items are out of stock",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrCouponInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Coupon is not valid",
				"error":   err.Error(),
			})
		}
		return notFoundOrInternal(c, err, "Could not place order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetMyOrders lists the caller's orders, newest first.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrder retrieves one order with its status badge metadata.
// Customers can only read their own orders; admins can read any.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)

	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order %s: %v", orderID, err)
		return notFoundOrInternal(c, err, "Could not retrieve order")
	}
	if order.UserID != userID && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
		})
	}
	return c.JSON(fiber.Map{
		"order":       order,
		"status_meta": models.MetaForStatus(order.Status),
	})
}

// HandleGetStatuses lists the known order statuses with their badge metadata.
func (h *OrderHandler) HandleGetStatuses(c *fiber.Ctx) error {
	statuses := make([]fiber.Map, 0, 5)
	for _, s := range models.AllStatuses() {
		statuses = append(statuses, fiber.Map{
			"status": s,
			"meta":   models.MetaForStatus(s),
		})
	}
	return c.JSON(statuses)
}

// HandleGetAllOrders lists every order for the admin dashboard.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleUpdateStatus sets an order's status. Setting the status the order
// already has is reported as a notice, not an error.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	status := models.OrderStatus(req.Status)
	order, err := h.service.UpdateStatus(orderID, status)
	if err != nil {
		if errors.Is(err, services.ErrNoChanges) {
			return c.JSON(fiber.Map{
				"message": "Order already has this status",
				"order":   order,
			})
		}
		log.Printf("Error updating status of order %s: %v", orderID, err)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown order status",
				"error":   err.Error(),
			})
		}
		return notFoundOrInternal(c, err, "Could not update order status")
	}
	return c.JSON(fiber.Map{
		"message":     "Order status updated",
		"order":       order,
		"status_meta": models.MetaForStatus(order.Status),
	})
}
