package services_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// countingPublisher records how many change events were published.
type countingPublisher struct {
	published int32
}

func (p *countingPublisher) Publish(routingKey string, body []byte) error {
	atomic.AddInt32(&p.published, 1)
	return nil
}

func newCatalogFixture(t *testing.T) (*services.CatalogService, *countingPublisher) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	categoryRepo := repositories.NewMockCategoryRepository()
	assert.NoError(t, categoryRepo.Create(&models.Category{ID: "cat-fruit", Name: "Fruits"}))

	events := &countingPublisher{}
	return services.NewCatalogService(productRepo, categoryRepo, events), events
}

func TestCatalogService_CreateProduct(t *testing.T) {
	service, events := newCatalogFixture(t)

	product := &models.Product{Name: "Apple", Price: 120, Unit: "1 kg", CategoryID: "cat-fruit", Stock: 50}
	assert.NoError(t, service.CreateProduct(product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&events.published))

	// Unknown category is rejected and publishes nothing.
	orphan := &models.Product{Name: "Ghost", Price: 1, Unit: "1 pc", CategoryID: "cat-nope"}
	err := service.CreateProduct(orphan)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&events.published))
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	service, _ := newCatalogFixture(t)

	product := &models.Product{Name: "Apple", Price: 120, Unit: "1 kg", CategoryID: "cat-fruit", Stock: 50}
	assert.NoError(t, service.CreateProduct(product))

	// A category with products cannot be deleted.
	err := service.DeleteCategory("cat-fruit")
	assert.ErrorIs(t, err, services.ErrCategoryInUse)

	assert.NoError(t, service.DeleteProduct(product.ID))
	assert.NoError(t, service.DeleteCategory("cat-fruit"))

	_, err = service.GetCategoryByID("cat-fruit")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
