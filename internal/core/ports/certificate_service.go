package ports

import "context"

// GenerateCertificateInput identifies the learner and course for a
// completion certificate.
type GenerateCertificateInput struct {
	CourseID    string
	LearnerID   string
	LearnerName string
}

// CertificateDocument is a rendered certificate ready to be served as a
// download. Filename follows the pattern <slug(course title)>-certificate.pdf.
type CertificateDocument struct {
	Filename string
	Content  []byte
	Serial   string
}

// CertificateRenderer renders certificate content into a document format.
// The production implementation produces a landscape A4 PDF.
type CertificateRenderer interface {
	Render(learnerName, courseTitle, serial string) ([]byte, error)
}

// CertificateService generates completion certificates. Issuance is not
// recorded anywhere: certificates are regenerable at will.
type CertificateService interface {
	Generate(ctx context.Context, input GenerateCertificateInput) (*CertificateDocument, error)
}
