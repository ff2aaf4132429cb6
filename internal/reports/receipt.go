// Package reports renders printable documents for ledger records.
package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"rms-backend/internal/models"
	"rms-backend/internal/timeutil"
)

// PaymentReceipt renders a single-page PDF receipt for a recorded payment.
func PaymentReceipt(p *models.Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Payment Receipt")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, fmt.Sprintf("Receipt #%s", p.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s IST", timeutil.Now().Format("02 Jan 2006 15:04")))
	pdf.Ln(12)
	pdf.SetTextColor(0, 0, 0)

	rows := [][2]string{
		{"Room", p.RoomNumber},
		{"Amount", fmt.Sprintf("Rs. %.2f", p.Amount)},
		{"Date", p.Date.In(timeutil.IST).Format("02 Jan 2006")},
		{"Status", string(p.Status)},
		{"Recorded By", p.RecordedBy},
	}

	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(50, 10, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(120, 10, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 6, "This is a system generated receipt and does not require a signature.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
