package services

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"sahilparate51/resume-relevance/internal/models"
)

const historySheet = "Evaluations"

var historyHeaders = []string{"ID", "JD Title", "Resume Filename", "Score", "Verdict", "Missing Skills", "Feedback", "Timestamp"}

type ExportService interface {
	HistoryWorkbook(evals []models.Evaluation) ([]byte, error)
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// HistoryWorkbook renders the dashboard table, newest first as given.
func (s *exportService) HistoryWorkbook(evals []models.Evaluation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", historySheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range historyHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(historySheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := f.SetCellStyle(historySheet, "A1", "H1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, e := range evals {
		row := []any{
			e.ID,
			e.JDTitle,
			e.ResumeFilename,
			RoundScore(e.RelevanceScore),
			string(e.Verdict),
			e.MissingSkills,
			e.Feedback,
			e.Timestamp.Format("2006-01-02 15:04:05"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	f.SetColWidth(historySheet, "B", "C", 28)
	f.SetColWidth(historySheet, "F", "F", 30)
	f.SetColWidth(historySheet, "G", "G", 80)
	f.SetColWidth(historySheet, "H", "H", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// RoundScore rounds to two decimals for display.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

// HistoryEntries maps stored rows to dashboard rows.
func HistoryEntries(evals []models.Evaluation) []models.HistoryEntry {
	entries := make([]models.HistoryEntry, 0, len(evals))
	for _, e := range evals {
		entries = append(entries, models.HistoryEntry{
			ID:             e.ID,
			JDTitle:        e.JDTitle,
			ResumeFilename: e.ResumeFilename,
			Score:          RoundScore(e.RelevanceScore),
			Verdict:        e.Verdict,
			MissingSkills:  e.MissingSkills,
			Feedback:       e.Feedback,
			Timestamp:      e.Timestamp,
		})
	}
	return entries
}
