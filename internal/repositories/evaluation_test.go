package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sahilparate51/resume-relevance/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Evaluation{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEvaluationRepository(t *testing.T) {
	Convey("Given an empty evaluation store", t, func() {
		ctx := context.Background()
		repo := NewEvaluationRepository(openTestDB(t))

		Convey("Listing returns no rows", func() {
			rows, err := repo.FindAll(ctx)
			So(err, ShouldBeNil)
			So(rows, ShouldBeEmpty)
		})

		Convey("An inserted evaluation comes back first with id and timestamp", func() {
			older := &models.Evaluation{JDTitle: "jd.pdf", ResumeFilename: "old.pdf", RelevanceScore: 10, Verdict: models.VerdictLow}
			So(repo.Create(ctx, older), ShouldBeNil)

			eval := &models.Evaluation{
				ID:             99,
				JDTitle:        "jd.pdf",
				ResumeFilename: "jane.docx",
				RelevanceScore: 56.44,
				Verdict:        models.VerdictMedium,
				MissingSkills:  "sql, tableau",
				Feedback:       "Add a SQL project.",
				Timestamp:      time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			}
			So(repo.Create(ctx, eval), ShouldBeNil)
			So(eval.ID, ShouldNotEqual, uint(99))
			So(eval.ID, ShouldBeGreaterThan, older.ID)

			rows, err := repo.FindAll(ctx)
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)

			got := rows[0]
			So(got.ID, ShouldEqual, eval.ID)
			So(got.JDTitle, ShouldEqual, "jd.pdf")
			So(got.ResumeFilename, ShouldEqual, "jane.docx")
			So(got.RelevanceScore, ShouldEqual, 56.44)
			So(got.Verdict, ShouldEqual, models.VerdictMedium)
			So(got.MissingSkills, ShouldEqual, "sql, tableau")
			So(got.Feedback, ShouldEqual, "Add a SQL project.")
			So(got.Timestamp.IsZero(), ShouldBeFalse)
			So(got.Timestamp.Year(), ShouldBeGreaterThan, 2000)
			So(got.SkillList(), ShouldResemble, []string{"sql", "tableau"})

			So(rows[1].ResumeFilename, ShouldEqual, "old.pdf")
		})
	})

	Convey("Given a store whose table is gone", t, func() {
		ctx := context.Background()
		db := openTestDB(t)
		So(db.Migrator().DropTable(&models.Evaluation{}), ShouldBeNil)
		repo := NewEvaluationRepository(db)

		Convey("Errors are returned, not swallowed", func() {
			So(repo.Create(ctx, &models.Evaluation{ResumeFilename: "x.pdf"}), ShouldNotBeNil)

			_, err := repo.FindAll(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "failed to find evaluations")
		})
	})
}
