package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"sahilparate51/resume-relevance/internal/logger"
	"sahilparate51/resume-relevance/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2d3f5e"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})
}

func renderResults(results []models.AnalysisResult) string {
	t := newTable("Resume", "Score", "Hard", "Semantic", "Verdict", "Missing Skills", "Feedback")
	for _, r := range results {
		t.Row(
			r.ResumeFilename,
			fmt.Sprintf("%.2f", r.Score),
			fmt.Sprintf("%.2f", r.HardScore),
			fmt.Sprintf("%.2f", r.SemanticScore),
			string(r.Verdict),
			displaySkills(models.JoinSkills(r.MissingSkills)),
			logger.Truncate(r.Feedback, 60),
		)
	}
	return t.String()
}

func renderHistory(entries []models.HistoryEntry) string {
	t := newTable("ID", "JD Title", "Resume Filename", "Score", "Verdict", "Missing Skills", "Timestamp")
	for _, e := range entries {
		t.Row(
			fmt.Sprintf("%d", e.ID),
			e.JDTitle,
			e.ResumeFilename,
			fmt.Sprintf("%.2f", e.Score),
			string(e.Verdict),
			displaySkills(e.MissingSkills),
			e.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return t.String()
}

func displaySkills(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
