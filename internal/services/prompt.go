package services

import (
	"fmt"
	"strings"

	"sahilparate51/resume-relevance/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFeedbackPrompt creates the prompt for personalised resume feedback
func (pb *PromptBuilder) BuildFeedbackPrompt(resumeText, jdText string, verdict models.Verdict, missingSkills []string) string {
	return fmt.Sprintf(`You are an AI assistant providing feedback on a resume based on a job description.
Here is the resume:
<RESUME_TEXT>
%s
</RESUME_TEXT>

Here is the job description:
<JD_TEXT>
%s
</JD_TEXT>

The resume has a verdict of "%s" with the following missing skills: %s.

Provide constructive feedback to the student in a professional and encouraging tone.
Focus on how they can improve their resume for this specific job.`,
		resumeText, jdText, verdict, strings.Join(missingSkills, models.MissingSkillsSeparator))
}

// BuildReportText lays out the lines rendered into a feedback report.
func (pb *PromptBuilder) BuildReportText(req models.ReportRequest) string {
	return fmt.Sprintf("Resume: %s\nJD: %s\nScore: %.2f\nVerdict: %s\nMissing Skills: %s\nFeedback: %s",
		req.ResumeFilename,
		req.JDTitle,
		req.Score,
		req.Verdict,
		strings.Join(req.MissingSkills, models.MissingSkillsSeparator),
		req.Feedback,
	)
}
