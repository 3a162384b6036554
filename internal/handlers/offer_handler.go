package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// OfferHandler handles HTTP requests for coupon offers.
type OfferHandler struct {
	service  *services.OfferService
	validate *validator.Validate
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(service *services.OfferService) *OfferHandler {
	return &OfferHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public offer routes.
func (h *OfferHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/offers", h.HandleGetOffers)
	router.Get("/offers/check/:code", h.HandleCheckCode)
}

// RegisterAdminRoutes registers the offer mutation routes.
func (h *OfferHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/offers", h.HandleCreateOffer)
	router.Put("/offers/:id", h.HandleUpdateOffer)
	router.Delete("/offers/:id", h.HandleDeleteOffer)
}

// HandleGetOffers retrieves all offers.
func (h *OfferHandler) HandleGetOffers(c *fiber.Ctx) error {
	offers, err := h.service.GetAllOffers()
	if err != nil {
		log.Printf("Error getting all offers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve offers",
			"error":   err.Error(),
		})
	}
	return c.JSON(offers)
}

// HandleCheckCode verifies a coupon code for the storefront preview.
func (h *OfferHandler) HandleCheckCode(c *fiber.Ctx) error {
	code := c.Params("code")
	offer, err := h.service.CheckCode(code, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrCouponInvalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Coupon is not valid",
				"error":   err.Error(),
			})
		}
		log.Printf("Error checking coupon %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check coupon",
			"error":   err.Error(),
		})
	}
	return c.JSON(offer)
}

// HandleCreateOffer creates a new offer.
func (h *OfferHandler) HandleCreateOffer(c *fiber.Ctx) error {
	var offer models.Offer
	if err := c.BodyParser(&offer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(offer); err != nil {
		return validationError(c, err)
	}

	if err := h.service.CreateOffer(&offer); err != nil {
		log.Printf("Error creating offer: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create offer",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(offer)
}

// HandleUpdateOffer updates an existing offer.
func (h *OfferHandler) HandleUpdateOffer(c *fiber.Ctx) error {
	var offer models.Offer
	if err := c.BodyParser(&offer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	offer.ID = c.Params("id")
	if err := h.validate.Struct(offer); err != nil {
		return validationError(c, err)
	}

	if err := h.service.UpdateOffer(&offer); err != nil {
		log.Printf("Error updating offer %s: %v", offer.ID, err)
		return notFoundOrInternal(c, err, "Could not update offer")
	}
	return c.JSON(offer)
}

// HandleDeleteOffer deletes an offer.
func (h *OfferHandler) HandleDeleteOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")
	if err := h.service.DeleteOffer(offerID); err != nil {
		log.Printf("Error deleting offer %s: %v", offerID, err)
		return notFoundOrInternal(c, err, "Could not delete offer")
	}
	return c.JSON(fiber.Map{"message": "Offer deleted"})
}
