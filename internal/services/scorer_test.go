package services

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"sahilparate51/resume-relevance/internal/models"
)

func TestScoreCombiner(t *testing.T) {
	Convey("Given the default combiner", t, func() {
		c := NewScoreCombiner()

		Convey("The final score is 0.6 hard plus 0.4 semantic, unrounded", func() {
			So(c.FinalScore(100, 100), ShouldAlmostEqual, 100, 1e-9)
			So(c.FinalScore(100.0/3, 50), ShouldAlmostEqual, 40, 1e-9)
			So(c.FinalScore(0, 0), ShouldEqual, 0)
			So(c.FinalScore(33.33, 71.11), ShouldAlmostEqual, 33.33*0.6+71.11*0.4, 1e-12)
		})

		Convey("A negative semantic score pulls the final score down", func() {
			So(c.FinalScore(50, -25), ShouldAlmostEqual, 20, 1e-9)
		})

		Convey("Verdict boundaries are inclusive at 80 and 50", func() {
			So(c.Verdict(80), ShouldEqual, models.VerdictHigh)
			So(c.Verdict(79.99), ShouldEqual, models.VerdictMedium)
			So(c.Verdict(50), ShouldEqual, models.VerdictMedium)
			So(c.Verdict(49.99), ShouldEqual, models.VerdictLow)
			So(c.Verdict(-10), ShouldEqual, models.VerdictLow)
			So(c.Verdict(100), ShouldEqual, models.VerdictHigh)
		})
	})

	Convey("Weights and thresholds can be overridden", t, func() {
		c := ScoreCombiner{HardWeight: 0.5, SemanticWeight: 0.5, HighThreshold: 90, MediumThreshold: 60}
		So(c.FinalScore(80, 60), ShouldEqual, 70)
		So(c.Verdict(85), ShouldEqual, models.VerdictMedium)
		So(c.Verdict(55), ShouldEqual, models.VerdictLow)
	})
}
