package services

import "sahilparate51/resume-relevance/internal/models"

// ScoreCombiner blends the hard and semantic scores and maps the result to a
// verdict. Zero value is not usable; see NewScoreCombiner.
type ScoreCombiner struct {
	HardWeight      float64
	SemanticWeight  float64
	HighThreshold   float64
	MediumThreshold float64
}

func NewScoreCombiner() ScoreCombiner {
	return ScoreCombiner{
		HardWeight:      0.6,
		SemanticWeight:  0.4,
		HighThreshold:   80,
		MediumThreshold: 50,
	}
}

// FinalScore is hard*HardWeight + semantic*SemanticWeight with no rounding.
func (c ScoreCombiner) FinalScore(hard, semantic float64) float64 {
	return hard*c.HardWeight + semantic*c.SemanticWeight
}

func (c ScoreCombiner) Verdict(final float64) models.Verdict {
	switch {
	case final >= c.HighThreshold:
		return models.VerdictHigh
	case final >= c.MediumThreshold:
		return models.VerdictMedium
	default:
		return models.VerdictLow
	}
}
