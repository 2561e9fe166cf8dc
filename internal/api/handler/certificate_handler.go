package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartlms/elearning-system/internal/core/ports"
)

// CertificateHandler serves completion certificates as PDF downloads.
type CertificateHandler struct {
	service ports.CertificateService
}

func NewCertificateHandler(service ports.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: service}
}

type generateCertificateRequest struct {
	CourseID string `json:"course_id" validate:"required"`
}

// Generate handles POST /v1/certificates. The response body is the rendered
// PDF; the Content-Disposition filename follows
// <slug(course title)>-certificate.pdf.
//
// @Summary      Generate a completion certificate
// @Tags         certificates
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        body  body  generateCertificateRequest  true  "Course to certify"
// @Success      200   {file}    file
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/certificates [post]
func (h *CertificateHandler) Generate(c echo.Context) error {
	var req generateCertificateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	learnerID, learnerName, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	doc, err := h.service.Generate(c.Request().Context(), ports.GenerateCertificateInput{
		CourseID:    req.CourseID,
		LearnerID:   learnerID,
		LearnerName: learnerName,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Blob(http.StatusOK, "application/pdf", doc.Content)
}
