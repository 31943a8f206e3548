package config

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	Convey("Given no overrides", t, func() {
		for _, key := range []string{"SKILL_VOCABULARY", "FUZZY_THRESHOLD", "HARD_WEIGHT", "DB_DRIVER", "VECTOR_INDEX", "SEMANTIC_TIMEOUT"} {
			t.Setenv(key, "")
		}
		cfg := Load()

		Convey("Scoring uses the documented defaults", func() {
			So(cfg.Scoring.Vocabulary, ShouldResemble, DefaultSkillVocabulary)
			So(cfg.Scoring.FuzzyThreshold, ShouldEqual, 85)
			So(cfg.Scoring.HardWeight, ShouldEqual, 0.6)
			So(cfg.Scoring.SemanticWeight, ShouldEqual, 0.4)
			So(cfg.Scoring.HighThreshold, ShouldEqual, 80)
			So(cfg.Scoring.MediumThreshold, ShouldEqual, 50)
			So(cfg.Scoring.FeedbackTemperature, ShouldEqual, float32(0.5))
			So(cfg.Scoring.SemanticTimeout, ShouldEqual, 30*time.Second)
			So(cfg.Scoring.VectorIndex, ShouldEqual, "memory")
		})

		Convey("sqlite is the default store", func() {
			So(cfg.Database.Driver, ShouldEqual, "sqlite")
			So(cfg.GetDatabaseDSN(), ShouldEqual, cfg.Database.Path)
		})
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("SKILL_VOCABULARY", " Go, Kubernetes ,, Terraform ")
		t.Setenv("FUZZY_THRESHOLD", "90")
		t.Setenv("VECTOR_INDEX", "Qdrant")
		t.Setenv("SEMANTIC_TIMEOUT", "not-a-duration")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_HOST", "db")
		cfg := Load()

		So(cfg.Scoring.Vocabulary, ShouldResemble, []string{"Go", "Kubernetes", "Terraform"})
		So(cfg.Scoring.FuzzyThreshold, ShouldEqual, 90)
		So(cfg.Scoring.VectorIndex, ShouldEqual, "qdrant")
		So(cfg.Scoring.SemanticTimeout, ShouldEqual, 30*time.Second)
		So(cfg.GetDatabaseDSN(), ShouldContainSubstring, "host=db")
	})
}

func TestInitDatabase(t *testing.T) {
	Convey("InitDatabase opens and migrates sqlite", t, func() {
		cfg := &Config{Database: DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "e.db")}}
		db, err := InitDatabase(cfg, zap.NewNop())
		So(err, ShouldBeNil)
		So(db.Migrator().HasTable("evaluations"), ShouldBeTrue)
	})

	Convey("Unknown drivers are rejected", t, func() {
		cfg := &Config{Database: DatabaseConfig{Driver: "mysql"}}
		_, err := InitDatabase(cfg, zap.NewNop())
		So(err, ShouldNotBeNil)
	})
}
