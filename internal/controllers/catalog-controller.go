package controllers

import (
	"net/http"
	"strconv"

	"github.com/chaiandgrill/pos-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CatalogController handles HTTP requests for categories and menu items
type CatalogController interface {
	// ListCategories retrieves all categories
	ListCategories(c *gin.Context)
	// CategoryNames retrieves category names only
	CategoryNames(c *gin.Context)
	// CreateCategory creates a new category
	CreateCategory(c *gin.Context)
	// RenameCategory renames an existing category
	RenameCategory(c *gin.Context)
	// DeleteCategory deletes an unreferenced category
	DeleteCategory(c *gin.Context)
	// CategoryItems retrieves a category's menu items
	CategoryItems(c *gin.Context)
	// ListItems retrieves menu items by category name or search term
	ListItems(c *gin.Context)
	// ItemCount returns the catalog-wide menu item count
	ItemCount(c *gin.Context)
	// CreateItem creates a new menu item
	CreateItem(c *gin.Context)
	// UpdateItem updates an existing menu item
	UpdateItem(c *gin.Context)
	// DeleteItem deletes an unreferenced menu item
	DeleteItem(c *gin.Context)
}

type catalogController struct {
	service services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(service services.CatalogService) CatalogController {
	return &catalogController{service: service}
}

// ListCategories godoc
// @Summary List categories
// @Description Get all categories ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Category
// @Security BearerAuth
// @Router /api/v1/categories [get]
func (cc *catalogController) ListCategories(ctx *gin.Context) {
	categories, err := cc.service.ListCategories()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// CategoryNames godoc
// @Summary List category names
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /api/v1/categories/names [get]
func (cc *catalogController) CategoryNames(ctx *gin.Context) {
	names, err := cc.service.CategoryNames()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, names)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param category body object true "category name"
// @Success 201 {object} models.Category
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/categories [post]
func (cc *catalogController) CreateCategory(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category, err := cc.service.CreateCategory(req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// RenameCategory godoc
// @Summary Rename a category
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body object true "new name"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/categories/{id} [put]
func (cc *catalogController) RenameCategory(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := cc.service.RenameCategory(id, req.Name); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Fails while any menu item still references the category
// @Tags catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/categories/{id} [delete]
func (cc *catalogController) DeleteCategory(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := cc.service.DeleteCategory(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// CategoryItems godoc
// @Summary List a category's menu items
// @Tags catalog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.MenuItem
// @Security BearerAuth
// @Router /api/v1/categories/{id}/items [get]
func (cc *catalogController) CategoryItems(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	items, err := cc.service.ItemsByCategoryID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// ListItems godoc
// @Summary List menu items
// @Description Filter by category name or case-insensitive name search
// @Tags catalog
// @Produce json
// @Param category query string false "Category name"
// @Param q query string false "Search term (substring of item name)"
// @Success 200 {array} models.MenuItem
// @Security BearerAuth
// @Router /api/v1/items [get]
func (cc *catalogController) ListItems(ctx *gin.Context) {
	category := ctx.Query("category")
	term := ctx.Query("q")

	if term != "" {
		items, err := cc.service.SearchItems(term)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, items)
		return
	}

	items, err := cc.service.ItemsByCategoryName(category)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// ItemCount godoc
// @Summary Count menu items
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /api/v1/items/count [get]
func (cc *catalogController) ItemCount(ctx *gin.Context) {
	count, err := cc.service.ItemCount()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

type menuItemRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CreateItem godoc
// @Summary Create a menu item
// @Tags catalog
// @Accept json
// @Produce json
// @Param item body controllers.menuItemRequest true "Menu item"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/items [post]
func (cc *catalogController) CreateItem(ctx *gin.Context) {
	var req menuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := cc.service.CreateItem(req.CategoryID, req.Name, req.Price, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary Update a menu item
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body controllers.menuItemRequest true "Menu item"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/items/{id} [put]
func (cc *catalogController) UpdateItem(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req menuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := cc.service.UpdateItem(id, req.CategoryID, req.Name, req.Price, req.Description); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// DeleteItem godoc
// @Summary Delete a menu item
// @Description Fails while any bill still references the item
// @Tags catalog
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/items/{id} [delete]
func (cc *catalogController) DeleteItem(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	if err := cc.service.DeleteItem(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// paramID parses a numeric path parameter, responding with 400 when invalid.
func paramID(ctx *gin.Context, name string) (uint, bool) {
	raw, exists := ctx.Params.Get(name)
	if !exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing id parameter"})
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return 0, false
	}
	return uint(id), true
}
