package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockOfferRepository is a mock implementation of repositories.OfferRepository
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) GetAll() ([]models.Offer, error) {
	args := m.Called()
	return args.Get(0).([]models.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetByID(id string) (*models.Offer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetByCode(code string) (*models.Offer, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) Create(offer *models.Offer) error {
	args := m.Called(offer)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(offer *models.Offer) error {
	args := m.Called(offer)
	return args.Error(0)
}

func (m *MockOfferRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOfferRepository) IncrementUsage(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type orderFixture struct {
	service     *services.OrderService
	productRepo *repositories.MockProductRepository
	cartRepo    *repositories.MockCartRepository
	orderRepo   *repositories.MockOrderRepository
	offerRepo   *MockOfferRepository
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	products := []models.Product{
		{ID: "prod-apple", Name: "Apple", Price: 120.0, Unit: "1 kg", CategoryID: "cat-fruit", Stock: 50},
		{ID: "prod-honey", Name: "Honey", Price: 400.0, Unit: "500 g", CategoryID: "cat-pantry", Stock: 5, Discount: 10},
	}
	for i := range products {
		assert.NoError(t, productRepo.Create(&products[i]))
	}

	cartRepo := repositories.NewMockCartRepository(productRepo)
	orderRepo := repositories.NewMockOrderRepository()
	offerRepo := new(MockOfferRepository)
	settings := services.NewSettingsService(repositories.NewMockSettingsRepository())

	return &orderFixture{
		service:     services.NewOrderService(orderRepo, cartRepo, productRepo, offerRepo, settings, nil),
		productRepo: productRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		offerRepo:   offerRepo,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	assert.NoError(t, f.cartRepo.Upsert("user-1", "prod-apple", 2))

	order, err := f.service.CreateOrder("user-1", services.PlaceOrderRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
	})
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Apple", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 120.0, order.Items[0].Price, 0.001)
	assert.InDelta(t, 240.0, order.Subtotal, 0.001)
	assert.InDelta(t, 40.0, order.DeliveryFee, 0.001)
	assert.InDelta(t, 280.0, order.TotalAmount, 0.001)

	// Stock is decremented and the cart cleared.
	product, err := f.productRepo.GetByID("prod-apple")
	assert.NoError(t, err)
	assert.Equal(t, 48, product.Stock)

	items, err := f.cartRepo.GetByUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	// The order can be read back.
	stored, err := f.orderRepo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.TotalAmount, stored.TotalAmount)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CreateOrder("user-1", services.PlaceOrderRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, services.ErrCartEmpty)
}

func TestOrderService_CreateOrder_OutOfStock(t *testing.T) {
	f := newOrderFixture(t)
	assert.NoError(t, f.cartRepo.Upsert("user-1", "prod-honey", 6))

	order, err := f.service.CreateOrder("user-1", services.PlaceOrderRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, services.ErrOutOfStock)
}

func TestOrderService_CreateOrder_WithCoupon(t *testing.T) {
	f := newOrderFixture(t)
	assert.NoError(t, f.cartRepo.Upsert("user-1", "prod-apple", 2))

	offer := &models.Offer{
		ID:              "offer-1",
		Code:            "SAVE10",
		DiscountPercent: 10,
		ValidFrom:       time.Now().Add(-time.Hour),
		ValidUntil:      time.Now().Add(time.Hour),
		Active:          true,
	}
	f.offerRepo.On("GetByCode", "SAVE10").Return(offer, nil).Once()
	f.offerRepo.On("IncrementUsage", "offer-1").Return(nil).Once()

	order, err := f.service.CreateOrder("user-1", services.PlaceOrderRequest{
		AddressID:     "addr-1",
		PaymentMethod: "upi",
		CouponCode:    "SAVE10",
	})
	assert.NoError(t, err)
	assert.Equal(t, "SAVE10", order.CouponCode)
	assert.InDelta(t, 24.0, order.Discount, 0.001)
	assert.InDelta(t, 240.0-24.0+40.0, order.TotalAmount, 0.001)
	f.offerRepo.AssertExpectations(t)
}

func TestOrderService_CreateOrder_InvalidCoupon(t *testing.T) {
	f := newOrderFixture(t)
	assert.NoError(t, f.cartRepo.Upsert("user-1", "prod-apple", 2))

	expired := &models.Offer{
		ID:              "offer-2",
		Code:            "OLD10",
		DiscountPercent: 10,
		ValidFrom:       time.Now().Add(-48 * time.Hour),
		ValidUntil:      time.Now().Add(-24 * time.Hour),
		Active:          true,
	}
	f.offerRepo.On("GetByCode", "OLD10").Return(expired, nil).Once()

	order, err := f.service.CreateOrder("user-1", services.PlaceOrderRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
		CouponCode:    "OLD10",
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, services.ErrCouponInvalid)
	f.offerRepo.AssertNotCalled(t, "IncrementUsage", mock.Anything)
}

func newStatusService(orderRepo repositories.OrderRepository) *services.OrderService {
	return services.NewOrderService(orderRepo, nil, nil, nil, nil, nil)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := newStatusService(mockRepo)

	placedAt := time.Now().Add(-time.Hour)
	existing := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderStatusPending, UpdatedAt: placedAt}
	mockRepo.On("GetByID", "order-1").Return(existing, nil).Once()
	mockRepo.On("UpdateStatus", "order-1", models.OrderStatusShipped).Return(nil).Once()

	order, err := service.UpdateStatus("order-1", models.OrderStatusShipped)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
	assert.True(t, order.UpdatedAt.After(placedAt))
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateStatus_SameStatusIsNoOp(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := newStatusService(mockRepo)

	existing := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderStatusShipped}
	mockRepo.On("GetByID", "order-1").Return(existing, nil).Once()

	order, err := service.UpdateStatus("order-1", models.OrderStatusShipped)
	assert.ErrorIs(t, err, services.ErrNoChanges)
	assert.Equal(t, existing, order)

	// The store must not be written for a no-op update.
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := newStatusService(mockRepo)

	order, err := service.UpdateStatus("order-1", models.OrderStatus("teleported"))
	assert.Nil(t, order)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}
