// Package receipt renders a finalized bill into a printable PDF. It is a pure
// formatting step over already-computed data; no pricing or totals are derived
// here.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/chaiandgrill/pos-api/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// Render produces the printable document for a bill: branding header, bill
// metadata, a line-item table with a trailing grand-total row, and a footer.
func Render(bill *models.Bill, cashierName string, lines []models.BillLine) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Branding header
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, "Chai & Grill", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "EXPRESS KITCHEN", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, "We Serve Passion", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Bill details
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Bill #: %d", bill.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", bill.CreatedAt.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s", bill.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Cashier: %s", cashierName), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Item table header
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 9, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 9, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 9, "Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 9, "Total", "1", 1, "C", true, 0, "")

	// Item rows
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range lines {
		pdf.CellFormat(90, 8, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("Rs. %.2f", line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("Rs. %.2f", line.LineTotal), "1", 1, "R", false, 0, "")
	}

	// Grand total row
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	pdf.CellFormat(115, 9, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 9, "Grand Total:", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 9, fmt.Sprintf("Rs. %.2f", bill.TotalAmount), "1", 1, "R", true, 0, "")
	pdf.Ln(10)

	// Footer
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, "Thank you for dining with us!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Please visit again!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
