package controllers

import (
	"net/http"
	"strconv"

	"github.com/chaiandgrill/pos-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardController serves the read-only sales aggregations
type DashboardController interface {
	// Summary returns today's sales, the menu item count and recent bills
	Summary(c *gin.Context)
	// RecentBills returns the most recent bills, newest first
	RecentBills(c *gin.Context)
	// BillLines returns one bill's line items
	BillLines(c *gin.Context)
}

type dashboardController struct {
	reports services.ReportService
	catalog services.CatalogService
}

// NewDashboardController creates a new instance of DashboardController
func NewDashboardController(reports services.ReportService, catalog services.CatalogService) DashboardController {
	return &dashboardController{reports: reports, catalog: catalog}
}

// Summary godoc
// @Summary Dashboard summary
// @Description Today's sales total, catalog size and the most recent bills
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/dashboard [get]
func (dc *dashboardController) Summary(ctx *gin.Context) {
	sales, err := dc.reports.TodaysSales()
	if err != nil {
		respondError(ctx, err)
		return
	}
	itemCount, err := dc.catalog.ItemCount()
	if err != nil {
		respondError(ctx, err)
		return
	}
	bills, err := dc.reports.RecentBills(5)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"todays_sales":    sales,
		"menu_item_count": itemCount,
		"recent_bills":    bills,
	})
}

// RecentBills godoc
// @Summary Recent bills
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of bills (default 5)"
// @Success 200 {array} models.Bill
// @Security BearerAuth
// @Router /api/v1/bills/recent [get]
func (dc *dashboardController) RecentBills(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "5"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit format"})
		return
	}

	bills, err := dc.reports.RecentBills(limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bills)
}

// BillLines godoc
// @Summary Bill line items
// @Tags dashboard
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {array} models.BillLine
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/bills/{id}/items [get]
func (dc *dashboardController) BillLines(ctx *gin.Context) {
	billID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	// 404 for unknown bills rather than an empty list.
	if _, err := dc.reports.GetBill(billID); err != nil {
		respondError(ctx, err)
		return
	}

	lines, err := dc.reports.BillLines(billID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lines)
}
