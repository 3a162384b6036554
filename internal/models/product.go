package models

import "gorm.io/gorm"

// Product represents a grocery item in the catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=2,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Unit        string    `json:"unit" validate:"required,max=20"` // e.g. "1 kg", "500 g", "1 dozen"
	Images      []string  `json:"images" gorm:"serializer:json"`
	CategoryID  string    `json:"category_id" gorm:"index;type:varchar(36)" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Discount    float64   `json:"discount" validate:"gte=0,lte=100"` // percent off, 0 means none
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int       `json:"review_count" validate:"gte=0"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// InStock reports whether the product can currently be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// EffectivePrice returns the unit price with the product discount applied.
func (p *Product) EffectivePrice() float64 {
	if p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}
