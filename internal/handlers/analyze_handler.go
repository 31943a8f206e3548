package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/models"
	"sahilparate51/resume-relevance/internal/services"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
	maxFileSize    int64
	log            *zap.Logger
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
	maxFileSize int64,
	log *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		log:            log.Named("analyze_handler"),
	}
}

// HandleAnalyze handles POST /analyze with one job_description file and one
// or more resumes files.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jdFiles := form.File["job_description"]
	if len(jdFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a Job Description first.",
		})
	}

	resumeFiles := form.File["resumes"]
	if len(resumeFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload at least one resume.",
		})
	}

	for _, file := range append([]*multipart.FileHeader{jdFiles[0]}, resumeFiles...) {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("%s is too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}
	}

	var stored []services.UploadedDocument
	defer func() {
		for _, doc := range stored {
			if err := h.storageService.Remove(doc); err != nil {
				h.log.Warn("⚠️  Failed to clean up upload", zap.String("file", doc.Path), zap.Error(err))
			}
		}
	}()

	save := func(file *multipart.FileHeader, kind services.UploadKind) (services.UploadedDocument, error) {
		doc, err := h.storageService.Save(file, kind)
		if err != nil {
			return services.UploadedDocument{}, err
		}
		stored = append(stored, doc)
		return doc, nil
	}

	jdDoc, err := save(jdFiles[0], services.UploadJobDescription)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save job description: %v", err),
		})
	}

	session, err := h.analyzer.LoadJobDescription(jdDoc)
	if err != nil {
		var jdErr *services.JobDescriptionError
		if errors.As(err, &jdErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("Failed to process JD: %s", jdErr.Result.Message()),
			})
		}
		return err
	}

	resumes := make([]services.UploadedDocument, 0, len(resumeFiles))
	for _, file := range resumeFiles {
		doc, err := save(file, services.UploadResume)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save resume %s: %v", file.Filename, err),
			})
		}
		resumes = append(resumes, doc)
	}

	results, err := h.analyzer.Analyze(c.UserContext(), session, resumes)
	if err != nil {
		return fmt.Errorf("analysis aborted after %d resumes: %w", len(results), err)
	}

	return c.JSON(models.AnalyzeResponse{
		JDTitle: session.JDTitle,
		Results: results,
	})
}
