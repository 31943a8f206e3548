package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"sahilparate51/resume-relevance/internal/models"
	"sahilparate51/resume-relevance/internal/repositories"
	"sahilparate51/resume-relevance/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type HistoryHandler struct {
	evalRepo      repositories.EvaluationRepository
	exportService services.ExportService
}

func NewHistoryHandler(evalRepo repositories.EvaluationRepository, exportService services.ExportService) *HistoryHandler {
	return &HistoryHandler{
		evalRepo:      evalRepo,
		exportService: exportService,
	}
}

// HandleList handles GET /evaluations
func (h *HistoryHandler) HandleList(c *fiber.Ctx) error {
	evals, err := h.evalRepo.FindAll(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(models.HistoryResponse{
		Count:       len(evals),
		Evaluations: services.HistoryEntries(evals),
	})
}

// HandleExport handles GET /evaluations/export
func (h *HistoryHandler) HandleExport(c *fiber.Ctx) error {
	evals, err := h.evalRepo.FindAll(c.UserContext())
	if err != nil {
		return err
	}

	workbook, err := h.exportService.HistoryWorkbook(evals)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(fmt.Sprintf("evaluations_%s.xlsx", time.Now().Format("20060102_150405")))
	return c.Send(workbook)
}
