package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/chaiandgrill/pos-api/internal/models"
	"gorm.io/gorm"
)

// BillingService turns a finalized cart into a persisted bill
type BillingService interface {
	// Checkout writes one bill plus its line items atomically and returns the
	// new bill id. The cart itself is the caller's to clear on success.
	Checkout(customerName string, issuerID uint, lines []models.CartLine) (uint, error)
}

type billingService struct {
	db *gorm.DB
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(db *gorm.DB) BillingService {
	return &billingService{db: db}
}

func (s *billingService) Checkout(customerName string, issuerID uint, lines []models.CartLine) (uint, error) {
	if len(lines) == 0 {
		return 0, models.ErrEmptyCart
	}

	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		customerName = models.WalkInCustomer
	}

	var total float64
	for _, line := range lines {
		total += line.LineTotal
	}

	bill := models.Bill{
		CustomerName: customerName,
		TotalAmount:  total,
		CreatedAt:    time.Now(),
		UserID:       issuerID,
	}

	// Header and line items land together or not at all. A fault mid-write
	// must never leave a bill without its items.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bill).Error; err != nil {
			return err
		}
		for _, line := range lines {
			item := models.BillItem{
				BillID:     bill.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice, // cart snapshot, not a fresh catalog lookup
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}

	return bill.ID, nil
}
