package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/theamal11z/grocerygunj1-sub002/internal/datatable"
	"github.com/theamal11z/grocerygunj1-sub002/internal/livesync"
	"github.com/theamal11z/grocerygunj1-sub002/internal/models"
	"github.com/theamal11z/grocerygunj1-sub002/internal/services"
)

// AdminHandler serves the dashboard list screens. Each list runs through a
// datatable with the columns that screen searches and sorts on. The product
// list is served from the live snapshot when one is wired; with no snapshot
// (change feed disabled) or before the first load completes it reads the
// store directly.
type AdminHandler struct {
	catalog  *services.CatalogService
	orders   *services.OrderService
	auth     *services.AuthService
	offers   *services.OfferService
	products *livesync.Snapshot[models.Product]
	validate *validator.Validate

	productTable *datatable.Table[models.Product]
	orderTable   *datatable.Table[models.Order]
	userTable    *datatable.Table[models.User]
	offerTable   *datatable.Table[models.Offer]
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(catalog *services.CatalogService, orders *services.OrderService, auth *services.AuthService, offers *services.OfferService, products *livesync.Snapshot[models.Product]) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		orders:   orders,
		auth:     auth,
		offers:   offers,
		products: products,
		validate: validator.New(),
		productTable: datatable.New([]datatable.Column[models.Product]{
			{Name: "name", Kind: datatable.String, String: func(p models.Product) string { return p.Name }},
			{Name: "unit", Kind: datatable.String, String: func(p models.Product) string { return p.Unit }},
			{Name: "price", Kind: datatable.Number, Number: func(p models.Product) float64 { return p.Price }},
			{Name: "stock", Kind: datatable.Number, Number: func(p models.Product) float64 { return float64(p.Stock) }},
		}),
		orderTable: datatable.New([]datatable.Column[models.Order]{
			{Name: "id", Kind: datatable.String, String: func(o models.Order) string { return o.ID }},
			{Name: "user_id", Kind: datatable.String, String: func(o models.Order) string { return o.UserID }},
			{Name: "status", Kind: datatable.String, String: func(o models.Order) string { return string(o.Status) }},
			{Name: "total", Kind: datatable.Number, Number: func(o models.Order) float64 { return o.TotalAmount }},
		}),
		userTable: datatable.New([]datatable.Column[models.User]{
			{Name: "email", Kind: datatable.String, String: func(u models.User) string { return u.Email }},
			{Name: "full_name", Kind: datatable.String, String: func(u models.User) string { return u.FullName }},
			{Name: "role", Kind: datatable.String, String: func(u models.User) string { return u.Role }},
		}),
		offerTable: datatable.New([]datatable.Column[models.Offer]{
			{Name: "code", Kind: datatable.String, String: func(o models.Offer) string { return o.Code }},
			{Name: "description", Kind: datatable.String, String: func(o models.Offer) string { return o.Description }},
			{Name: "discount", Kind: datatable.Number, Number: func(o models.Offer) float64 { return o.DiscountPercent }},
		}),
	}
}

// RegisterRoutes registers the dashboard routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/tables/products", h.HandleListProducts)
	router.Get("/tables/orders", h.HandleListOrders)
	router.Get("/tables/users", h.HandleListUsers)
	router.Get("/tables/offers", h.HandleListOffers)
	router.Patch("/users/:id/role", h.HandleSetUserRole)
}

// SetRoleRequest is the body of the role change endpoint.
type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin customer"`
}

func tableQuery(c *fiber.Ctx) datatable.Query {
	return datatable.Query{
		Search:     c.Query("q"),
		LastSearch: c.Query("prev_q"),
		SortBy:     c.Query("sort"),
		SortDesc:   c.Query("dir") == "desc",
		Page:       c.QueryInt("page", 1),
	}
}

// HandleListProducts serves the product table from the live snapshot, or
// from the store when no snapshot is wired.
func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	var (
		rows []models.Product
		ok   bool
	)
	if h.products != nil {
		rows, ok = h.products.Get()
	}
	if !ok {
		var err error
		rows, err = h.catalog.GetAllProducts()
		if err != nil {
			log.Printf("Error loading products for admin table: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not retrieve products",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(h.productTable.Apply(rows, tableQuery(c)))
}

// HandleListOrders serves the order table.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	rows, err := h.orders.GetAllOrders()
	if err != nil {
		log.Printf("Error loading orders for admin table: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(h.orderTable.Apply(rows, tableQuery(c)))
}

// HandleListUsers serves the user table. Password hashes are already
// stripped by the service.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	rows, err := h.auth.ListUsers()
	if err != nil {
		log.Printf("Error loading users for admin table: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(h.userTable.Apply(rows, tableQuery(c)))
}

// HandleListOffers serves the offer table.
func (h *AdminHandler) HandleListOffers(c *fiber.Ctx) error {
	rows, err := h.offers.GetAllOffers()
	if err != nil {
		log.Printf("Error loading offers for admin table: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve offers",
			"error":   err.Error(),
		})
	}
	return c.JSON(h.offerTable.Apply(rows, tableQuery(c)))
}

// HandleSetUserRole changes a user's role.
func (h *AdminHandler) HandleSetUserRole(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	if err := h.auth.SetUserRole(userID, req.Role); err != nil {
		log.Printf("Error setting role for user %s: %v", userID, err)
		return notFoundOrInternal(c, err, "Could not update user role")
	}
	return c.JSON(fiber.Map{"message": "User role updated"})
}
