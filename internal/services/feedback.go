package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/logger"
	"sahilparate51/resume-relevance/internal/models"
)

// DefaultFeedbackTemperature keeps feedback moderately deterministic.
const DefaultFeedbackTemperature float32 = 0.5

// FeedbackResult is the generated prose, or the fallback message when Failed.
type FeedbackResult struct {
	Text   string
	Failed bool
}

type FeedbackGenerator interface {
	Generate(ctx context.Context, resumeText, jdText string, verdict models.Verdict, missingSkills []string) FeedbackResult
}

type feedbackGenerator struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	temperature   float32
	timeout       time.Duration
	metrics       *Metrics
	log           *zap.Logger
}

func NewFeedbackGenerator(generator TextGenerator, temperature float32, timeout time.Duration, metrics *Metrics, log *zap.Logger) FeedbackGenerator {
	return &feedbackGenerator{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		temperature:   temperature,
		timeout:       timeout,
		metrics:       metrics,
		log:           log.Named("feedback"),
	}
}

// Generate never fails: provider errors come back as a readable message.
func (f *feedbackGenerator) Generate(ctx context.Context, resumeText, jdText string, verdict models.Verdict, missingSkills []string) FeedbackResult {
	prompt := f.promptBuilder.BuildFeedbackPrompt(resumeText, jdText, verdict, missingSkills)
	f.log.Debug("📝 Feedback prompt built", zap.Int("chars", len(prompt)))

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	text, err := f.generator.GenerateText(ctx, prompt, f.temperature)
	if err != nil {
		f.log.Warn("❌ Feedback generation failed", zap.String("error", logger.Truncate(err.Error(), 300)))
		f.metrics.ObserveFeedbackFailure()
		return FeedbackResult{
			Text:   fmt.Sprintf("Could not generate feedback. Check your API key. Error: %v", err),
			Failed: true,
		}
	}

	return FeedbackResult{Text: text}
}
