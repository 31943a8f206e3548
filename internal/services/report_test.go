package services

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"sahilparate51/resume-relevance/internal/models"
)

func TestReportService(t *testing.T) {
	Convey("Given the report service", t, func() {
		reports := NewReportService()

		Convey("It renders a PDF document", func() {
			pdf, err := reports.RenderFeedbackPDF(models.ReportRequest{
				JDTitle:        "data_analyst.pdf",
				ResumeFilename: "jane.docx",
				Score:          56.0,
				Verdict:        models.VerdictMedium,
				MissingSkills:  []string{"sql"},
				Feedback:       "Résumé looks solid.\nAdd a SQL project.",
			})
			So(err, ShouldBeNil)
			So(bytes.HasPrefix(pdf, []byte("%PDF-")), ShouldBeTrue)
		})

		Convey("Report filenames use the resume stem", func() {
			So(reports.ReportFilename("jane.docx"), ShouldEqual, "jane_feedback.pdf")
			So(reports.ReportFilename("uploads/john.smith.pdf"), ShouldEqual, "john_feedback.pdf")
			So(reports.ReportFilename(".pdf"), ShouldEqual, "resume_feedback.pdf")
		})
	})
}
