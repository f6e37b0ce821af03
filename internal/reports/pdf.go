package reports

import (
	"bytes"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/kunduaritra/Expense-Tracker/internal/models"
)

const maxPDFRows = 200

// RenderPDF lays out a statement as an A4 document: summary strip,
// transaction table, truncation notice past maxPDFRows.
func RenderPDF(st Statement, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 48)
	pdf.SetTextColor(235, 235, 235)
	pdf.Text(25, 140, "EXPENSE TRACKER")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Account Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+st.From+" to "+st.To)
	pdf.Ln(5)
	pdf.Cell(0, 6, "User: "+maskEmail(st.Email))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Income (INR)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense (INR)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Net (INR)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, st.TotalIncome.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, st.TotalExpense.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, st.Net().StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	colW := []float64{22, 26, 82, 30, 30}
	writeTableHeader(pdf, colW)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)

	for i, r := range st.Rows {
		if i >= maxPDFRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "...truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}

		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeTableHeader(pdf, colW)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(30, 30, 30)
		}

		amt := r.Amount.StringFixed(2)
		if r.Type == models.TypeExpense {
			amt = "-" + amt
		}

		pdf.CellFormat(colW[0], 8, strings.ToUpper(string(r.Type)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, r.Date, "1", 0, "C", false, 0, "")

		x := pdf.GetX()
		y := pdf.GetY()
		pdf.MultiCell(colW[2], 8, trimTo(r.Title, 80), "1", "L", false)
		usedH := pdf.GetY() - y
		pdf.SetXY(x+colW[2], y)

		pdf.CellFormat(colW[3], usedH, amt, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], usedH, string(r.Method), "1", 1, "C", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated "+now.UTC().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTableHeader(pdf *gofpdf.Fpdf, colW []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(colW[0], 8, "TYPE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[1], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[2], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW[4], 8, "METHOD", "1", 1, "C", true, 0, "")
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 2 {
		return email
	}
	return email[:2] + "..." + email[at:]
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "..."
}
