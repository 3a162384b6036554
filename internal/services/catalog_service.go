package services

import (
	"fmt"

	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/repositories"
)

// CatalogService handles business logic for products and categories.
// Every catalog mutation publishes a "catalog.changed" event so the admin
// snapshot can reload.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	events       EventPublisher
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, events EventPublisher) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		events:       events,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetProductsByCategory retrieves the products of one category.
func (s *CatalogService) GetProductsByCategory(categoryID string) ([]models.Product, error) {
	return s.productRepo.GetByCategory(categoryID)
}

// CreateProduct creates a new product after checking its category exists.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		return fmt.Errorf("category for new product: %w", err)
	}
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.notifyChanged()
	return nil
}

// UpdateProduct updates an existing product.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.notifyChanged()
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.notifyChanged()
	return nil
}

// GetAllCategories retrieves all categories.
func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CatalogService) GetCategoryByID(id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}
	s.notifyChanged()
	return nil
}

// UpdateCategory updates an existing category.
func (s *CatalogService) UpdateCategory(category *models.Category) error {
	if err := s.categoryRepo.Update(category); err != nil {
		return err
	}
	s.notifyChanged()
	return nil
}

// DeleteCategory deletes a category. Categories that still have products are
// kept to avoid orphaning catalog rows.
func (s *CatalogService) DeleteCategory(id string) error {
	products, err := s.productRepo.GetByCategory(id)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return fmt.Errorf("category %s has %d products: %w", id, len(products), ErrCategoryInUse)
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.notifyChanged()
	return nil
}

func (s *CatalogService) notifyChanged() {
	publishEvent(s.events, KeyCatalogChanged, map[string]string{"entity": "catalog"})
}
