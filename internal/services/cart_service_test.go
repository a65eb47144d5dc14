package services

import (
	"testing"

	"github.com/chaiandgrill/pos-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesLines(t *testing.T) {
	carts := NewCartService()

	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 2))
	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 3))

	lines := carts.Lines(1)
	require.Len(t, lines, 1, "repeat adds of the same item merge into one line")
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 99.0, lines[0].UnitPrice)
	assert.Equal(t, 495.0, lines[0].LineTotal)
	assert.Equal(t, 495.0, carts.Total(1))
}

func TestCartLineCountMatchesDistinctItems(t *testing.T) {
	carts := NewCartService()

	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 1))
	require.NoError(t, carts.Add(1, 11, "Zinger Burger", 450, 1))
	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 1))
	require.NoError(t, carts.Add(1, 12, "Club Sandwich", 550, 2))

	lines := carts.Lines(1)
	assert.Len(t, lines, 3)

	// Insertion order is stable across merges
	assert.Equal(t, uint(10), lines[0].MenuItemID)
	assert.Equal(t, uint(11), lines[1].MenuItemID)
	assert.Equal(t, uint(12), lines[2].MenuItemID)

	assert.Equal(t, 2*99.0+450.0+2*550.0, carts.Total(1))
}

func TestCartKeepsPriceSnapshot(t *testing.T) {
	carts := NewCartService()

	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 1))
	// A later add carries a changed catalog price; the first snapshot wins.
	require.NoError(t, carts.Add(1, 10, "Green Tea", 120, 1))

	lines := carts.Lines(1)
	require.Len(t, lines, 1)
	assert.Equal(t, 99.0, lines[0].UnitPrice)
	assert.Equal(t, 198.0, lines[0].LineTotal)
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	carts := NewCartService()

	assert.ErrorIs(t, carts.Add(1, 10, "Green Tea", 99, 0), models.ErrValidation)
	assert.ErrorIs(t, carts.Add(1, 10, "Green Tea", 99, -2), models.ErrValidation)
	assert.Empty(t, carts.Lines(1))
}

func TestCartRemove(t *testing.T) {
	carts := NewCartService()

	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 2))
	require.NoError(t, carts.Add(1, 11, "Zinger Burger", 450, 1))

	require.NoError(t, carts.Remove(1, 10))
	lines := carts.Lines(1)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(11), lines[0].MenuItemID)

	// Removing again, or removing an item never added, is a miss
	assert.ErrorIs(t, carts.Remove(1, 10), models.ErrNotFound)
	assert.ErrorIs(t, carts.Remove(1, 999), models.ErrNotFound)
}

func TestCartClear(t *testing.T) {
	carts := NewCartService()

	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 2))
	carts.Clear(1)

	assert.Empty(t, carts.Lines(1))
	assert.Zero(t, carts.Total(1))

	// Clearing an empty cart is harmless
	carts.Clear(1)
	carts.Clear(42)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	carts := NewCartService()

	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 1))
	require.NoError(t, carts.Add(2, 11, "Zinger Burger", 450, 1))

	assert.Len(t, carts.Lines(1), 1)
	assert.Len(t, carts.Lines(2), 1)

	carts.Clear(1)
	assert.Empty(t, carts.Lines(1))
	assert.Len(t, carts.Lines(2), 1)
}

func TestCartLinesReturnsCopy(t *testing.T) {
	carts := NewCartService()

	require.NoError(t, carts.Add(1, 10, "Green Tea", 99, 1))

	lines := carts.Lines(1)
	lines[0].Quantity = 100

	fresh := carts.Lines(1)
	assert.Equal(t, 1, fresh[0].Quantity)
}
