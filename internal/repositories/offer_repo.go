package repositories

import (
	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// OfferRepository defines the interface for coupon/offer data access.
type OfferRepository interface {
	GetAll() ([]models.Offer, error)
	GetByID(id string) (*models.Offer, error)
	GetByCode(code string) (*models.Offer, error)
	Create(offer *models.Offer) error
	Update(offer *models.Offer) error
	Delete(id string) error
	// IncrementUsage bumps the usage counter after an offer is applied.
	IncrementUsage(id string) error
}
