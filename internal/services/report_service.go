package services

import (
	"fmt"
	"time"

	"github.com/chaiandgrill/pos-api/internal/models"
	"gorm.io/gorm"
)

// ReportService provides the read-only aggregations behind the dashboard
type ReportService interface {
	// TodaysSales returns the summed totals of bills created on the local
	// calendar date, 0 when there are none
	TodaysSales() (float64, error)
	// RecentBills returns the most recent bills, newest first. Ids are
	// assigned monotonically at creation so id order is the recency order.
	RecentBills(limit int) ([]models.Bill, error)
	// BillLines returns a bill's lines with item names, in checkout order
	BillLines(billID uint) ([]models.BillLine, error)
	// GetBill retrieves one bill with its issuer
	GetBill(id uint) (*models.Bill, error)
}

type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new instance of ReportService
func NewReportService(db *gorm.DB) ReportService {
	return &reportService{db: db}
}

func (s *reportService) TodaysSales() (float64, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var total float64
	err := s.db.Model(&models.Bill{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return total, nil
}

func (s *reportService) RecentBills(limit int) ([]models.Bill, error) {
	if limit <= 0 {
		limit = 5
	}
	var bills []models.Bill
	if err := s.db.Order("id DESC").Limit(limit).Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return bills, nil
}

func (s *reportService) BillLines(billID uint) ([]models.BillLine, error) {
	var lines []models.BillLine
	err := s.db.Model(&models.BillItem{}).
		Select("menu_items.name AS name, bill_items.quantity AS quantity, bill_items.unit_price AS unit_price, bill_items.quantity * bill_items.unit_price AS line_total").
		Joins("JOIN menu_items ON menu_items.id = bill_items.menu_item_id").
		Where("bill_items.bill_id = ?", billID).
		Order("bill_items.id").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return lines, nil
}

func (s *reportService) GetBill(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Preload("User").First(&bill, id).Error; err != nil {
		return nil, translateLookupErr(err, "bill", id)
	}
	return &bill, nil
}
