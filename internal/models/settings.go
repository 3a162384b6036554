package models

import "time"

// Settings section keys within the single settings document.
const (
	SectionDelivery = "delivery_settings"
	SectionSupport  = "support_settings"
)

// Settings is the single JSON configuration document for the store.
// Sections are nested objects keyed by the Section* constants; missing
// sections are lazily filled in with defaults on first read.
type Settings struct {
	ID        string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Data      map[string]any `json:"settings" gorm:"serializer:json"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DeliverySettings configures delivery pricing for checkout.
type DeliverySettings struct {
	Fee              float64 `json:"fee"`
	FreeAbove        float64 `json:"free_above"` // subtotal threshold for free delivery, 0 disables
	EstimateMinutes  int     `json:"estimate_minutes"`
	MinOrderSubtotal float64 `json:"min_order_subtotal"`
}

// FAQ is a single question/answer pair shown on the support page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactInfo holds the store's support contact details.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupportSettings configures the customer support page.
type SupportSettings struct {
	FAQs    []FAQ       `json:"faqs"`
	Contact ContactInfo `json:"contact"`
}

// DefaultDeliverySettings is the section created when none is stored yet.
func DefaultDeliverySettings() DeliverySettings {
	return DeliverySettings{
		Fee:              40,
		FreeAbove:        500,
		EstimateMinutes:  45,
		MinOrderSubtotal: 0,
	}
}

// DefaultSupportSettings is the section created when none is stored yet.
func DefaultSupportSettings() SupportSettings {
	return SupportSettings{
		FAQs: []FAQ{
			{Question: "How do I track my order?", Answer: "Open your order from the orders page to see its current status."},
			{Question: "What is the delivery time?", Answer: "Orders are usually delivered within 45 minutes."},
			{Question: "How do I cancel an order?", Answer: "Orders can be cancelled from the order page while they are still pending."},
		},
		Contact: ContactInfo{
			Email: "support@grocerygunj.example",
			Phone: "+1 555 0100",
		},
	}
}
