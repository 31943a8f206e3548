package models

import (
	"strings"
	"time"
)

type Verdict string

const (
	VerdictHigh   Verdict = "High suitability"
	VerdictMedium Verdict = "Medium suitability"
	VerdictLow    Verdict = "Low suitability"

	// VerdictProcessingError labels batch rows whose resume could not be
	// extracted. It is never persisted.
	VerdictProcessingError Verdict = "Processing Error"
)

// MissingSkillsSeparator joins the missing-skills list into its stored form.
const MissingSkillsSeparator = ", "

// Evaluation is one scored (job description, resume) pair. Rows are only
// ever inserted.
type Evaluation struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	JDTitle        string    `gorm:"column:jd_title;type:text" json:"jd_title"`
	ResumeFilename string    `gorm:"type:text" json:"resume_filename"`
	RelevanceScore float64   `gorm:"type:real" json:"relevance_score"`
	Verdict        Verdict   `gorm:"type:text" json:"verdict"`
	MissingSkills  string    `gorm:"type:text" json:"missing_skills"`
	Feedback       string    `gorm:"type:text" json:"feedback"`
	Timestamp      time.Time `gorm:"column:timestamp;autoCreateTime;default:CURRENT_TIMESTAMP" json:"timestamp"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

// JoinSkills renders a missing-skills list the way it is stored.
func JoinSkills(skills []string) string {
	return strings.Join(skills, MissingSkillsSeparator)
}

// SkillList splits the stored missing-skills column back into a list.
func (e *Evaluation) SkillList() []string {
	if strings.TrimSpace(e.MissingSkills) == "" {
		return nil
	}

	parts := strings.Split(e.MissingSkills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
