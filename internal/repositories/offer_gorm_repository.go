package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
)

// GORMOfferRepository is a GORM implementation of OfferRepository.
type GORMOfferRepository struct {
	db *gorm.DB
}

// NewGORMOfferRepository creates a new instance of GORMOfferRepository.
func NewGORMOfferRepository(db *gorm.DB) *GORMOfferRepository {
	return &GORMOfferRepository{
		db: db,
	}
}

// GetAll retrieves all offers.
func (r *GORMOfferRepository) GetAll() ([]models.Offer, error) {
	var offers []models.Offer
	if err := r.db.Find(&offers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all offers: %w", err)
	}
	return offers, nil
}

// GetByID retrieves a single offer by its ID.
func (r *GORMOfferRepository) GetByID(id string) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get offer by ID %s: %w", id, err)
	}
	return &offer, nil
}

// GetByCode retrieves an offer by its coupon code.
func (r *GORMOfferRepository) GetByCode(code string) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.First(&offer, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("offer with code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get offer by code %s: %w", code, err)
	}
	return &offer, nil
}

// Create creates a new offer.
func (r *GORMOfferRepository) Create(offer *models.Offer) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	if err := r.db.Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// Update updates an existing offer.
func (r *GORMOfferRepository) Update(offer *models.Offer) error {
	res := r.db.Save(offer)
	if res.Error != nil {
		return fmt.Errorf("failed to update offer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("offer with ID %s for update: %w", offer.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes an offer by its ID.
func (r *GORMOfferRepository) Delete(id string) error {
	res := r.db.Delete(&models.Offer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete offer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("offer with ID %s for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// IncrementUsage bumps the usage counter after an offer is applied.
func (r *GORMOfferRepository) IncrementUsage(id string) error {
	res := r.db.Model(&models.Offer{}).Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to increment usage for offer %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("offer with ID %s for usage increment: %w", id, ErrNotFound)
	}
	return nil
}
