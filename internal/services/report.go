package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"sahilparate51/resume-relevance/internal/models"
)

type ReportService interface {
	RenderFeedbackPDF(req models.ReportRequest) ([]byte, error)
	ReportFilename(resumeFilename string) string
}

type reportService struct {
	promptBuilder *PromptBuilder
}

func NewReportService() ReportService {
	return &reportService{promptBuilder: NewPromptBuilder()}
}

// RenderFeedbackPDF writes the report text one line per multi-cell on an A4 page.
func (r *reportService) RenderFeedbackPDF(req models.ReportRequest) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(r.promptBuilder.BuildReportText(req), "\n") {
		pdf.MultiCell(0, 8, tr(line), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render feedback PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// ReportFilename derives "<resume stem>_feedback.pdf".
func (r *reportService) ReportFilename(resumeFilename string) string {
	base := filepath.Base(resumeFilename)
	stem := strings.SplitN(base, ".", 2)[0]
	if stem == "" {
		stem = "resume"
	}
	return stem + "_feedback.pdf"
}
