package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// SettingsHandler handles HTTP requests for app settings.
type SettingsHandler struct {
	service *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// RegisterRoutes registers the public read routes for settings.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router) {
	settings := router.Group("/settings")
	settings.Get("/", h.HandleGetDocument)
	settings.Get("/delivery", h.HandleGetDelivery)
	settings.Get("/support", h.HandleGetSupport)
}

// AdminWriteRequest is the body of the service-to-service settings write.
type AdminWriteRequest struct {
	Settings map[string]any `json:"settings"`
}

// HandleGetDocument returns the whole settings document, materialising
// defaults for any section that is still missing.
func (h *SettingsHandler) HandleGetDocument(c *fiber.Ctx) error {
	doc, err := h.service.Document()
	if err != nil {
		log.Printf("Error getting settings document: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(doc)
}

// HandleGetDelivery returns the delivery settings section.
func (h *SettingsHandler) HandleGetDelivery(c *fiber.Ctx) error {
	ds, err := h.service.DeliverySettings()
	if err != nil {
		log.Printf("Error getting delivery settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve delivery settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(ds)
}

// HandleGetSupport returns the support settings section.
func (h *SettingsHandler) HandleGetSupport(c *fiber.Ctx) error {
	ss, err := h.service.SupportSettings()
	if err != nil {
		log.Printf("Error getting support settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve support settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(ss)
}

// HandleAdminWrite replaces the settings document. Only POST is accepted;
// every other method gets a 405 so misconfigured callers fail loudly.
func (h *SettingsHandler) HandleAdminWrite(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"message": "Method not allowed, use POST",
		})
	}

	var req AdminWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Settings == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing settings object",
		})
	}

	doc, err := h.service.AdminWrite(req.Settings)
	if err != nil {
		log.Printf("Error writing settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save settings",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Settings saved",
		"data":    doc,
	})
}
