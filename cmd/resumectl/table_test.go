package main

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"sahilparate51/resume-relevance/internal/models"
)

func TestRenderTables(t *testing.T) {
	Convey("Result tables show scores to two decimals", t, func() {
		out := renderResults([]models.AnalysisResult{
			{ResumeFilename: "jane.pdf", Score: 56.4444, HardScore: 33.333, SemanticScore: 91.11, Verdict: models.VerdictMedium, MissingSkills: []string{"sql"}, Feedback: "ok"},
			{ResumeFilename: "notes.txt", Verdict: models.VerdictProcessingError, Feedback: "❌ Failed to process resume: Unsupported file format."},
		})
		So(out, ShouldContainSubstring, "jane.pdf")
		So(out, ShouldContainSubstring, "56.44")
		So(out, ShouldContainSubstring, "Processing Error")
		So(out, ShouldContainSubstring, "None")
	})

	Convey("History tables show every row", t, func() {
		out := renderHistory([]models.HistoryEntry{
			{ID: 7, JDTitle: "jd.pdf", ResumeFilename: "a.pdf", Score: 33.33, Verdict: models.VerdictLow, MissingSkills: "sql, tableau", Timestamp: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		})
		So(out, ShouldContainSubstring, "a.pdf")
		So(out, ShouldContainSubstring, "sql, tableau")
		So(out, ShouldContainSubstring, "2024-03-01 09:30:00")
	})
}
