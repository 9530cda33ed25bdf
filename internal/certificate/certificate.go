// Package certificate renders completion certificates for learning modules.
package certificate

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
)

var (
	ErrNotCompleted    = errors.New("module not completed")
	ErrUnsupportedText = errors.New("text cannot be rendered with the certificate font")
)

// Encodable reports whether s fits the cp1252 core fonts the certificate uses.
func Encodable(s string) bool {
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

// Render writes a one-page A4 landscape PDF for a completed module.
func Render(w io.Writer, m catalog.LearningModule, holder string, issued time.Time) error {
	if !m.Completed {
		return ErrNotCompleted
	}
	if holder == "" {
		holder = "WheelBoard Member"
	}
	if !Encodable(holder) {
		return fmt.Errorf("holder %q: %w", holder, ErrUnsupportedText)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Certificate: "+m.Title, true)
	pdf.AddPage()

	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, 277, 190, "D")

	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetY(35)
	pdf.CellFormat(0, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.Ln(8)
	pdf.CellFormat(0, 8, "This certifies that", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Ln(4)
	pdf.CellFormat(0, 12, tr(holder), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.Ln(4)
	pdf.CellFormat(0, 8, "has completed the module", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Ln(2)
	pdf.CellFormat(0, 10, tr(m.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(10)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Category: %s   Duration: %s   Level: %s", m.Category, m.Duration, m.Difficulty)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr("Instructor: "+m.Instructor), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Issued: "+issued.Format("02 Jan 2006"), "", 1, "C", false, 0, "")

	return pdf.Output(w)
}
