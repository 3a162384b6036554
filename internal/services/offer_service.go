package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
)

// OfferService handles business logic for coupon offers.
type OfferService struct {
	offerRepo repositories.OfferRepository
}

// NewOfferService creates a new OfferService.
func NewOfferService(offerRepo repositories.OfferRepository) *OfferService {
	return &OfferService{
		offerRepo: offerRepo,
	}
}

// GetAllOffers retrieves all offers.
func (s *OfferService) GetAllOffers() ([]models.Offer, error) {
	return s.offerRepo.GetAll()
}

// GetOfferByID retrieves a single offer by its ID.
func (s *OfferService) GetOfferByID(id string) (*models.Offer, error) {
	return s.offerRepo.GetByID(id)
}

// CreateOffer creates a new offer after sanity-checking its window.
func (s *OfferService) CreateOffer(offer *models.Offer) error {
	if !offer.ValidUntil.After(offer.ValidFrom) {
		return fmt.Errorf("offer %s: valid_until must be after valid_from", offer.Code)
	}
	return s.offerRepo.Create(offer)
}

// UpdateOffer updates an existing offer.
func (s *OfferService) UpdateOffer(offer *models.Offer) error {
	return s.offerRepo.Update(offer)
}

// DeleteOffer deletes an offer by its ID.
func (s *OfferService) DeleteOffer(id string) error {
	return s.offerRepo.Delete(id)
}

// CheckCode looks a coupon up by code and verifies it can be applied at the
// given time, for the storefront "apply coupon" preview.
func (s *OfferService) CheckCode(code string, at time.Time) (*models.Offer, error) {
	offer, err := s.offerRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("coupon %s: %w", code, ErrCouponInvalid)
		}
		return nil, err
	}
	if !offer.Usable(at) {
		return nil, fmt.Errorf("coupon %s: %w", code, ErrCouponInvalid)
	}
	return offer, nil
}
