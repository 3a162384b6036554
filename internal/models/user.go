package models

import "gorm.io/gorm"

// User roles. Admins can manage the catalog, orders, users and settings;
// customers can only act on their own cart, wishlist and orders.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents an account and its profile fields.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
	Role       string `json:"role" gorm:"type:varchar(20);default:'customer'" validate:"omitempty,oneof=admin customer"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
