package services

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/models"
)

func TestAnalyzerService(t *testing.T) {
	Convey("Given an analyzer backed by sqlite", t, func() {
		ctx := context.Background()
		repo := newTestRepo(t)
		extractor := &fakeExtractor{results: map[string]ExtractionResult{
			"/up/jd.pdf":    {Text: "We need a Python and SQL expert with Tableau skills", Format: "pdf"},
			"/up/good.pdf":  {Text: "Experienced in Python and Excel", Format: "pdf"},
			"/up/great.pdf": {Text: "Python, SQL and Tableau dashboards", Format: "pdf"},
			"/up/notes.txt": {Failure: ExtractionUnsupported, Format: "txt"},
		}}
		evaluator := newTestEvaluator(&fakeEmbedder{}, &fakeIndex{score: 0.9}, &fakeGenerator{text: "ok"})
		analyzer := NewAnalyzerService(extractor, evaluator, repo, nil, zap.NewNop())

		Convey("Loading a job description uses its filename as the title", func() {
			session, err := analyzer.LoadJobDescription(UploadedDocument{Filename: "jd.pdf", Path: "/up/jd.pdf"})
			So(err, ShouldBeNil)
			So(session.JDTitle, ShouldEqual, "jd.pdf")
			So(session.JDText, ShouldContainSubstring, "Tableau")
		})

		Convey("An unreadable job description is a typed error", func() {
			_, err := analyzer.LoadJobDescription(UploadedDocument{Filename: "jd.txt", Path: "/up/notes.txt"})
			So(err, ShouldNotBeNil)

			jdErr, ok := err.(*JobDescriptionError)
			So(ok, ShouldBeTrue)
			So(jdErr.Result.Message(), ShouldEqual, "Unsupported file format.")
		})

		Convey("A batch keeps upload order and survives a bad resume", func() {
			session := &AnalysisSession{JDTitle: "jd.pdf", JDText: "We need a Python and SQL expert with Tableau skills"}
			results, err := analyzer.Analyze(ctx, session, []UploadedDocument{
				{Filename: "good.pdf", Path: "/up/good.pdf"},
				{Filename: "notes.txt", Path: "/up/notes.txt"},
				{Filename: "great.pdf", Path: "/up/great.pdf"},
			})
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 3)

			So(results[0].ResumeFilename, ShouldEqual, "good.pdf")
			So(results[0].Score, ShouldAlmostEqual, 100.0/3*0.6+90*0.4, 1e-9)
			So(results[0].Verdict, ShouldEqual, models.VerdictMedium)
			So(results[0].EvaluationID, ShouldBeGreaterThan, uint(0))
			So(results[0].SemanticStatus, ShouldEqual, string(SemanticScored))

			So(results[1].Verdict, ShouldEqual, models.VerdictProcessingError)
			So(results[1].Score, ShouldEqual, 0)
			So(results[1].Feedback, ShouldEqual, "❌ Failed to process resume: Unsupported file format.")

			So(results[2].Verdict, ShouldEqual, models.VerdictHigh)
			So(results[2].MissingSkills, ShouldBeEmpty)

			Convey("Only scored resumes are persisted", func() {
				rows, err := repo.FindAll(ctx)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0].ResumeFilename, ShouldEqual, "great.pdf")
				So(rows[1].ResumeFilename, ShouldEqual, "good.pdf")
				So(rows[1].MissingSkills, ShouldEqual, "sql, tableau")
				So(rows[1].JDTitle, ShouldEqual, "jd.pdf")
				So(rows[1].Feedback, ShouldEqual, "ok")
			})
		})

		Convey("A storage failure stops the batch and is returned", func() {
			failing := NewAnalyzerService(extractor, evaluator, failingRepo{}, nil, zap.NewNop())
			session := &AnalysisSession{JDTitle: "jd.pdf", JDText: "Python"}

			results, err := failing.Analyze(ctx, session, []UploadedDocument{
				{Filename: "notes.txt", Path: "/up/notes.txt"},
				{Filename: "good.pdf", Path: "/up/good.pdf"},
				{Filename: "great.pdf", Path: "/up/great.pdf"},
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "disk full")
			So(results, ShouldHaveLength, 1)
		})
	})
}
