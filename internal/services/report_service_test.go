package services

import (
	"testing"

	"github.com/chaiandgrill/pos-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodaysSalesFreshStore(t *testing.T) {
	db := setupTestDB(t)
	reports := NewReportService(db)

	total, err := reports.TodaysSales()
	require.NoError(t, err)
	assert.Equal(t, 0.0, total, "no bills yet means zero, not an error")
}

func TestTodaysSalesSumsCheckouts(t *testing.T) {
	db := setupTestDB(t)
	_, items := seedCatalog(t, db)
	billing := NewBillingService(db)
	reports := NewReportService(db)

	_, err := billing.Checkout("", 1, []models.CartLine{
		{MenuItemID: items[0].ID, UnitPrice: 99, Quantity: 2, LineTotal: 198},
	})
	require.NoError(t, err)
	_, err = billing.Checkout("", 1, []models.CartLine{
		{MenuItemID: items[2].ID, UnitPrice: 350, Quantity: 1, LineTotal: 350},
	})
	require.NoError(t, err)

	total, err := reports.TodaysSales()
	require.NoError(t, err)
	assert.Equal(t, 548.0, total)
}

func TestRecentBillsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	_, items := seedCatalog(t, db)
	billing := NewBillingService(db)
	reports := NewReportService(db)

	var ids []uint
	for i := 0; i < 7; i++ {
		id, err := billing.Checkout("", 1, []models.CartLine{
			{MenuItemID: items[0].ID, UnitPrice: 99, Quantity: 1, LineTotal: 99},
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	bills, err := reports.RecentBills(5)
	require.NoError(t, err)
	require.Len(t, bills, 5)
	for i, bill := range bills {
		assert.Equal(t, ids[len(ids)-1-i], bill.ID)
	}

	// Non-positive limits fall back to the dashboard default of five
	bills, err = reports.RecentBills(0)
	require.NoError(t, err)
	assert.Len(t, bills, 5)

	bills, err = reports.RecentBills(100)
	require.NoError(t, err)
	assert.Len(t, bills, 7)
}

func TestBillLines(t *testing.T) {
	db := setupTestDB(t)
	_, items := seedCatalog(t, db)
	billing := NewBillingService(db)
	reports := NewReportService(db)

	billID, err := billing.Checkout("", 1, []models.CartLine{
		{MenuItemID: items[1].ID, UnitPrice: 120, Quantity: 2, LineTotal: 240},
		{MenuItemID: items[0].ID, UnitPrice: 99, Quantity: 1, LineTotal: 99},
	})
	require.NoError(t, err)

	lines, err := reports.BillLines(billID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// Checkout order, not name order
	assert.Equal(t, "Regular Tea", lines[0].Name)
	assert.Equal(t, 240.0, lines[0].LineTotal)
	assert.Equal(t, "Green Tea", lines[1].Name)
	assert.Equal(t, 99.0, lines[1].LineTotal)

	empty, err := reports.BillLines(9999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetBill(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	_, items := seedCatalog(t, db)
	billing := NewBillingService(db)
	reports := NewReportService(db)

	cashier, err := users.CreateUser("alice", "s3cret", models.RoleCashier)
	require.NoError(t, err)

	billID, err := billing.Checkout("Hamza", cashier.ID, []models.CartLine{
		{MenuItemID: items[0].ID, UnitPrice: 99, Quantity: 1, LineTotal: 99},
	})
	require.NoError(t, err)

	bill, err := reports.GetBill(billID)
	require.NoError(t, err)
	assert.Equal(t, "Hamza", bill.CustomerName)
	assert.Equal(t, "alice", bill.User.Name)

	_, err = reports.GetBill(9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
