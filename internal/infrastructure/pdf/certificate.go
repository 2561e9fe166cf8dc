// Package pdf renders completion certificates with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// CertificateRenderer produces landscape A4 certificate documents.
// It implements ports.CertificateRenderer.
type CertificateRenderer struct {
	// Now is overridable for deterministic output in tests.
	Now func() time.Time
}

func NewCertificateRenderer() *CertificateRenderer {
	return &CertificateRenderer{Now: time.Now}
}

// Render lays out the certificate centred on a landscape A4 page: heading,
// learner name, course title, issue date and serial.
func (r *CertificateRenderer) Render(learnerName, courseTitle, serial string) ([]byte, error) {
	doc := gofpdf.New("L", "mm", "A4", "")
	// Pin the document metadata to the injected clock so identical inputs
	// produce identical bytes.
	doc.SetCreationDate(r.Now())
	doc.AddPage()

	pageWidth, _ := doc.GetPageSize()
	center := pageWidth / 2

	doc.SetFont("Helvetica", "B", 40)
	doc.Text(center-doc.GetStringWidth("Certificate of Completion")/2, 50, "Certificate of Completion")

	doc.SetFont("Helvetica", "", 20)
	doc.Text(center-doc.GetStringWidth("This is to certify that")/2, 80, "This is to certify that")

	doc.SetFont("Helvetica", "B", 30)
	doc.Text(center-doc.GetStringWidth(learnerName)/2, 100, learnerName)

	doc.SetFont("Helvetica", "", 20)
	doc.Text(center-doc.GetStringWidth("has successfully completed the course")/2, 120, "has successfully completed the course")

	doc.SetFont("Helvetica", "B", 25)
	doc.Text(center-doc.GetStringWidth(courseTitle)/2, 140, courseTitle)

	date := fmt.Sprintf("Date: %s", r.Now().Format("January 2, 2006"))
	doc.SetFont("Helvetica", "", 15)
	doc.Text(center-doc.GetStringWidth(date)/2, 170, date)

	doc.SetFont("Helvetica", "", 9)
	doc.Text(center-doc.GetStringWidth("Serial: "+serial)/2, 190, "Serial: "+serial)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}
