package controllers

import (
	"fmt"
	"net/http"

	"github.com/chaiandgrill/pos-api/internal/receipt"
	"github.com/chaiandgrill/pos-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// BillingController handles the cart and checkout flow of one signed-in session
type BillingController interface {
	// GetCart returns the session's cart lines and running total
	GetCart(c *gin.Context)
	// AddToCart puts a menu item in the cart, merging duplicate lines
	AddToCart(c *gin.Context)
	// RemoveFromCart removes one cart line
	RemoveFromCart(c *gin.Context)
	// ClearCart empties the cart
	ClearCart(c *gin.Context)
	// Checkout converts the cart into a persisted bill
	Checkout(c *gin.Context)
	// Receipt streams the printable PDF for a bill
	Receipt(c *gin.Context)
}

type billingController struct {
	catalog services.CatalogService
	carts   services.CartService
	billing services.BillingService
	reports services.ReportService
}

// NewBillingController creates a new instance of BillingController
func NewBillingController(catalog services.CatalogService, carts services.CartService,
	billing services.BillingService, reports services.ReportService) BillingController {
	return &billingController{
		catalog: catalog,
		carts:   carts,
		billing: billing,
		reports: reports,
	}
}

// sessionUserID reads the authenticated user id set by the JWT middleware.
func sessionUserID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Get("userID")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	id, ok := raw.(uint)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected user ID type"})
		return 0, false
	}
	return id, true
}

// GetCart godoc
// @Summary View cart
// @Tags billing
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/cart [get]
func (bc *billingController) GetCart(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"lines": bc.carts.Lines(userID),
		"total": bc.carts.Total(userID),
	})
}

// AddToCart godoc
// @Summary Add a menu item to the cart
// @Description Adding an item already in the cart raises its quantity instead of creating a second line
// @Tags billing
// @Accept json
// @Produce json
// @Param line body object true "menu_item_id and quantity (1-100)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/cart/items [post]
func (bc *billingController) AddToCart(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	var req struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1,max=100"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be between 1 and 100"})
		return
	}

	// Snapshot the current catalog price; later price edits must not touch
	// lines already in the cart.
	item, err := bc.catalog.ItemByID(req.MenuItemID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := bc.carts.Add(userID, item.ID, item.Name, item.Price, req.Quantity); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"lines": bc.carts.Lines(userID),
		"total": bc.carts.Total(userID),
	})
}

// RemoveFromCart godoc
// @Summary Remove a cart line
// @Tags billing
// @Produce json
// @Param itemId path int true "Menu item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/cart/items/{itemId} [delete]
func (bc *billingController) RemoveFromCart(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	itemID, ok := paramID(ctx, "itemId")
	if !ok {
		return
	}

	if err := bc.carts.Remove(userID, itemID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"lines": bc.carts.Lines(userID),
		"total": bc.carts.Total(userID),
	})
}

// ClearCart godoc
// @Summary Clear the cart
// @Tags billing
// @Success 204
// @Security BearerAuth
// @Router /api/v1/cart [delete]
func (bc *billingController) ClearCart(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	bc.carts.Clear(userID)
	ctx.JSON(http.StatusNoContent, nil)
}

// Checkout godoc
// @Summary Checkout
// @Description Writes the bill and its line items atomically, then clears the cart
// @Tags billing
// @Accept json
// @Produce json
// @Param checkout body object false "optional customer_name"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/checkout [post]
func (bc *billingController) Checkout(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	var req struct {
		CustomerName string `json:"customer_name"`
	}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	lines := bc.carts.Lines(userID)
	billID, err := bc.billing.Checkout(req.CustomerName, userID, lines)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// The writer persisted the bill; the session cart is ours to clear.
	bc.carts.Clear(userID)

	log.WithFields(log.Fields{
		"bill_id": billID,
		"user_id": userID,
		"lines":   len(lines),
	}).Info("Checkout completed")

	ctx.JSON(http.StatusCreated, gin.H{"bill_id": billID})
}

// Receipt godoc
// @Summary Download a bill receipt
// @Tags billing
// @Produce application/pdf
// @Param id path int true "Bill ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/bills/{id}/receipt [get]
func (bc *billingController) Receipt(ctx *gin.Context) {
	billID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	bill, err := bc.reports.GetBill(billID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	lines, err := bc.reports.BillLines(billID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	pdf, err := receipt.Render(bill, bill.User.Name, lines)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt"})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bill_%d.pdf", bill.ID))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
