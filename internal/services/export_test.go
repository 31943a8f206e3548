package services

import (
	"bytes"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"

	"sahilparate51/resume-relevance/internal/models"
)

func TestExportService(t *testing.T) {
	Convey("Given two stored evaluations", t, func() {
		ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
		evals := []models.Evaluation{
			{ID: 2, JDTitle: "jd.pdf", ResumeFilename: "b.pdf", RelevanceScore: 96, Verdict: models.VerdictHigh, Feedback: "Great", Timestamp: ts},
			{ID: 1, JDTitle: "jd.pdf", ResumeFilename: "a.pdf", RelevanceScore: 100.0 / 3, Verdict: models.VerdictLow, MissingSkills: "sql, tableau", Feedback: "Add SQL", Timestamp: ts},
		}

		Convey("The workbook has a header and one row per evaluation in order", func() {
			data, err := NewExportService().HistoryWorkbook(evals)
			So(err, ShouldBeNil)

			f, err := excelize.OpenReader(bytes.NewReader(data))
			So(err, ShouldBeNil)
			defer f.Close()

			rows, err := f.GetRows("Evaluations")
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 3)
			So(rows[0], ShouldResemble, []string{"ID", "JD Title", "Resume Filename", "Score", "Verdict", "Missing Skills", "Feedback", "Timestamp"})
			So(rows[1][2], ShouldEqual, "b.pdf")
			So(rows[2][2], ShouldEqual, "a.pdf")
			So(rows[2][3], ShouldEqual, "33.33")
			So(rows[2][5], ShouldEqual, "sql, tableau")
			So(rows[2][7], ShouldEqual, "2024-03-01 09:30:00")
		})

		Convey("History entries round the score for display only", func() {
			entries := HistoryEntries(evals)
			So(entries, ShouldHaveLength, 2)
			So(entries[1].Score, ShouldEqual, 33.33)
			So(evals[1].RelevanceScore, ShouldNotEqual, 33.33)
		})
	})

	Convey("An empty history still produces a header row", t, func() {
		data, err := NewExportService().HistoryWorkbook(nil)
		So(err, ShouldBeNil)

		f, err := excelize.OpenReader(bytes.NewReader(data))
		So(err, ShouldBeNil)
		defer f.Close()

		rows, err := f.GetRows("Evaluations")
		So(err, ShouldBeNil)
		So(rows, ShouldHaveLength, 1)
	})
}
