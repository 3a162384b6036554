package services

import (
	"encoding/json"
	"log"
)

// Routing keys for change events published to the message bus. Consumers
// bind with topic wildcards (e.g. "cart.*") to drive debounced reloads.
const (
	KeyCartChanged        = "cart.changed"
	KeyWishlistChanged    = "wishlist.changed"
	KeyCatalogChanged     = "catalog.changed"
	KeyOrderCreated       = "order.created"
	KeyOrderStatusChanged = "order.status_changed"
)

// EventPublisher publishes change events to the message bus.
// *rabbitmq.Client satisfies it; services tolerate a nil publisher.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// publishEvent marshals payload and publishes it under the routing key.
// Publish failures are logged, never propagated: the mutation already
// succeeded and the change feed is advisory.
func publishEvent(pub EventPublisher, routingKey string, payload any) {
	if pub == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := pub.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
