package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

func newCartFixture(t *testing.T) (*services.CartService, repositories.CartRepository) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	products := []models.Product{
		{ID: "prod-apple", Name: "Apple", Price: 120.0, Unit: "1 kg", CategoryID: "cat-fruit", Stock: 50},
		{ID: "prod-milk", Name: "Milk", Price: 60.0, Unit: "1 l", CategoryID: "cat-dairy", Stock: 3},
		{ID: "prod-honey", Name: "Honey", Price: 400.0, Unit: "500 g", CategoryID: "cat-pantry", Stock: 20, Discount: 10},
	}
	for i := range products {
		assert.NoError(t, productRepo.Create(&products[i]))
	}

	cartRepo := repositories.NewMockCartRepository(productRepo)
	settings := services.NewSettingsService(repositories.NewMockSettingsRepository())
	return services.NewCartService(cartRepo, productRepo, settings, nil), cartRepo
}

func TestCartService_AddToCart_IncrementsExistingLine(t *testing.T) {
	service, cartRepo := newCartFixture(t)

	first, err := service.AddToCart("user-1", "prod-apple", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := service.AddToCart("user-1", "prod-apple", 3)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	items, err := cartRepo.GetByUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	totals, err := service.GetCartTotals("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 5, totals.ItemCount)
	assert.InDelta(t, 5*120.0, totals.Subtotal, 0.001)
}

func TestCartService_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	service, _ := newCartFixture(t)

	item, err := service.AddToCart("user-1", "prod-apple", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_AddToCart_OutOfStock(t *testing.T) {
	service, cartRepo := newCartFixture(t)

	item, err := service.AddToCart("user-1", "prod-milk", 4)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, services.ErrOutOfStock)

	items, err := cartRepo.GetByUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	service, _ := newCartFixture(t)

	item, err := service.AddToCart("user-1", "prod-nope", 1)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_UpdateQuantity_RejectsBelowOne(t *testing.T) {
	service, cartRepo := newCartFixture(t)

	item, err := service.AddToCart("user-1", "prod-apple", 2)
	assert.NoError(t, err)

	updated, err := service.UpdateQuantity("user-1", item.ID, 0)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	// The line is untouched.
	current, err := cartRepo.GetByID("user-1", item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, current.Quantity)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	service, _ := newCartFixture(t)

	item, err := service.AddToCart("user-1", "prod-apple", 2)
	assert.NoError(t, err)

	updated, err := service.UpdateQuantity("user-1", item.ID, 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	service, cartRepo := newCartFixture(t)

	item, err := service.AddToCart("user-1", "prod-apple", 1)
	assert.NoError(t, err)

	assert.NoError(t, service.RemoveFromCart("user-1", item.ID))

	items, err := cartRepo.GetByUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	// Removing again reports not found.
	err = service.RemoveFromCart("user-1", item.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCartService_GetCartTotals(t *testing.T) {
	service, _ := newCartFixture(t)

	// Empty cart: no fee at all.
	totals, err := service.GetCartTotals("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, totals.ItemCount)
	assert.Zero(t, totals.DeliveryFee)
	assert.Zero(t, totals.Total)

	// Small cart: below the free-delivery threshold, fee applies.
	_, err = service.AddToCart("user-1", "prod-apple", 2)
	assert.NoError(t, err)

	totals, err = service.GetCartTotals("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, totals.ItemCount)
	assert.InDelta(t, 240.0, totals.Subtotal, 0.001)
	assert.InDelta(t, 40.0, totals.DeliveryFee, 0.001)
	assert.InDelta(t, 280.0, totals.Total, 0.001)

	// Discounted prices count, and crossing the threshold waives the fee.
	// Honey is 400 with 10% off, so 2 units add 720.
	_, err = service.AddToCart("user-1", "prod-honey", 2)
	assert.NoError(t, err)

	totals, err = service.GetCartTotals("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, totals.ItemCount)
	assert.InDelta(t, 960.0, totals.Subtotal, 0.001)
	assert.Zero(t, totals.DeliveryFee)
	assert.InDelta(t, 960.0, totals.Total, 0.001)
}
