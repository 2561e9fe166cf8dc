package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/smartlms/elearning-system/internal/api/metrics"
	"github.com/smartlms/elearning-system/internal/core/domain"
	"github.com/smartlms/elearning-system/internal/core/ports"
)

// CertificateService builds completion certificates on demand. No issuance
// record is kept, so repeated requests produce fresh documents with new
// serial numbers.
type CertificateService struct {
	courses  ports.CourseRepository
	renderer ports.CertificateRenderer
	recorder ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewCertificateService(courses ports.CourseRepository, renderer ports.CertificateRenderer, recorder ports.ActivityRecorder, logger zerolog.Logger) *CertificateService {
	return &CertificateService{courses: courses, renderer: renderer, recorder: recorder, logger: logger}
}

func (s *CertificateService) Generate(ctx context.Context, input ports.GenerateCertificateInput) (*ports.CertificateDocument, error) {
	course, err := s.courses.FindByID(ctx, input.CourseID)
	if err != nil {
		return nil, err
	}

	serial := uuid.NewString()
	content, err := s.renderer.Render(input.LearnerName, course.Title, serial)
	if err != nil {
		s.logger.Error().Err(err).Str("course_id", course.ID).Msg("certificate rendering failed")
		return nil, err
	}

	doc := &ports.CertificateDocument{
		Filename: slug.Make(course.Title) + "-certificate.pdf",
		Content:  content,
		Serial:   serial,
	}

	metrics.CertificatesGeneratedTotal.Inc()
	s.logger.Info().
		Str("course_id", course.ID).
		Str("learner_id", input.LearnerID).
		Str("serial", serial).
		Msg("certificate generated")

	if s.recorder != nil {
		s.recorder.Enqueue(domain.ActivityEvent{
			CourseID:  course.ID,
			Kind:      domain.ActivityCertificateIssued,
			ActorID:   input.LearnerID,
			ActorName: input.LearnerName,
			Detail:    map[string]any{"serial": serial},
			Timestamp: time.Now().UTC(),
		})
	}

	return doc, nil
}
