package services

import (
	"fmt"
	"sync"

	"github.com/chaiandgrill/pos-api/internal/models"
)

// CartService holds the in-memory checkout session for each signed-in user.
// Carts are never persisted: they live from the first add until an explicit
// clear or a successful checkout.
type CartService interface {
	// Add puts an item in the user's cart, merging with an existing line for
	// the same item by summing quantities
	Add(userID, menuItemID uint, name string, unitPrice float64, quantity int) error
	// Remove deletes the line for a menu item from the user's cart
	Remove(userID, menuItemID uint) error
	// Clear empties the user's cart
	Clear(userID uint)
	// Lines returns the user's cart lines in insertion order
	Lines(userID uint) []models.CartLine
	// Total returns the sum of line totals, recomputed on demand
	Total(userID uint) float64
}

type cartService struct {
	mu    sync.Mutex
	carts map[uint][]models.CartLine
}

// NewCartService creates a new instance of CartService
func NewCartService() CartService {
	return &cartService{carts: make(map[uint][]models.CartLine)}
}

func (s *cartService) Add(userID, menuItemID uint, name string, unitPrice float64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].MenuItemID == menuItemID {
			// At most one line per item: repeat adds raise the quantity and
			// keep the original price snapshot.
			lines[i].Quantity += quantity
			lines[i].LineTotal = float64(lines[i].Quantity) * lines[i].UnitPrice
			return nil
		}
	}

	s.carts[userID] = append(lines, models.CartLine{
		MenuItemID: menuItemID,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		LineTotal:  float64(quantity) * unitPrice,
	})
	return nil
}

func (s *cartService) Remove(userID, menuItemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].MenuItemID == menuItemID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: no cart line for menu item %d", models.ErrNotFound, menuItemID)
}

func (s *cartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *cartService) Lines(userID uint) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func (s *cartService) Total(userID uint) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.carts[userID] {
		total += line.LineTotal
	}
	return total
}
