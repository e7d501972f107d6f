package handlers

import (
	"log"

	"commerce/internal/models"
	"commerce/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
	listingService  *services.ListingService
	validate        *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService, listingService *services.ListingService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		listingService:  listingService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the public category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id/listings", h.HandleGetCategoryListings)
}

// RegisterProtectedRoutes registers the mutating category routes.
func (h *CategoryHandler) RegisterProtectedRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return respondBusinessError(c, err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryListings retrieves the open listings in a category.
// The special ID "uncategorized" selects listings with no category.
func (h *CategoryHandler) HandleGetCategoryListings(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	var filter *string
	if categoryID != "uncategorized" {
		filter = &categoryID
	}

	listings, err := h.listingService.GetListingsByCategory(filter)
	if err != nil {
		log.Printf("Error getting listings for category %s: %v", categoryID, err)
		return respondBusinessError(c, err)
	}
	return c.JSON(listings)
}

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	category := models.Category{Name: req.Name}
	if err := h.categoryService.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondBusinessError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleDeleteCategory deletes a category; its listings become uncategorized.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		log.Printf("Error deleting category %s: %v", categoryID, err)
		return respondBusinessError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted",
	})
}
