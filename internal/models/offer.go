package models

import (
	"time"

	"gorm.io/gorm"
)

// Offer represents a coupon code with a validity window and usage limits.
type Offer struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code            string    `json:"code" gorm:"uniqueIndex;type:varchar(40)" validate:"required,min=3,max=40"`
	Description     string    `json:"description" validate:"omitempty,max=200"`
	DiscountPercent float64   `json:"discount_percent" validate:"required,gt=0,lte=100"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	MaxUses         int       `json:"max_uses" validate:"gte=0"` // 0 means unlimited
	UsedCount       int       `json:"used_count"`
	Active          bool      `json:"active" gorm:"default:true"`
	gorm.Model                // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Usable reports whether the offer can be applied at the given time.
func (o *Offer) Usable(now time.Time) bool {
	if !o.Active {
		return false
	}
	if now.Before(o.ValidFrom) || now.After(o.ValidUntil) {
		return false
	}
	if o.MaxUses > 0 && o.UsedCount >= o.MaxUses {
		return false
	}
	return true
}
