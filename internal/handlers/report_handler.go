package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sahilparate51/resume-relevance/internal/models"
	"sahilparate51/resume-relevance/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// HandleReport handles POST /reports
func (h *ReportHandler) HandleReport(c *fiber.Ctx) error {
	var req models.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeFilename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_filename is required",
		})
	}

	pdf, err := h.reportService.RenderFeedbackPDF(req)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(h.reportService.ReportFilename(req.ResumeFilename))
	return c.Send(pdf)
}
