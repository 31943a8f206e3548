package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/models"
)

// ResumeEvaluation is everything computed for one resume against one job
// description.
type ResumeEvaluation struct {
	HardScore      float64
	Semantic       SemanticResult
	FinalScore     float64
	Verdict        models.Verdict
	MissingSkills  []string
	Feedback       string
	FeedbackFailed bool
}

type EvaluatorService interface {
	EvaluateResume(ctx context.Context, resumeText, jdText string) (*ResumeEvaluation, error)
}

type evaluatorService struct {
	hardMatcher     HardMatcher
	semanticMatcher SemanticMatcher
	combiner        ScoreCombiner
	feedback        FeedbackGenerator
	metrics         *Metrics
	log             *zap.Logger
}

func NewEvaluatorService(
	hardMatcher HardMatcher,
	semanticMatcher SemanticMatcher,
	combiner ScoreCombiner,
	feedback FeedbackGenerator,
	metrics *Metrics,
	log *zap.Logger,
) EvaluatorService {
	return &evaluatorService{
		hardMatcher:     hardMatcher,
		semanticMatcher: semanticMatcher,
		combiner:        combiner,
		feedback:        feedback,
		metrics:         metrics,
		log:             log.Named("evaluator"),
	}
}

// EvaluateResume runs hard match, semantic match, score blending and feedback
// generation in order. External failures are already folded into the result,
// so the error is reserved for failures that must stop the caller.
func (e *evaluatorService) EvaluateResume(ctx context.Context, resumeText, jdText string) (*ResumeEvaluation, error) {
	started := time.Now()

	hard := e.hardMatcher.Match(resumeText, jdText)
	e.log.Debug("🔍 Hard match computed",
		zap.Float64("score", hard.Score),
		zap.Strings("required", hard.RequiredSkills),
		zap.Strings("missing", hard.MissingSkills),
	)

	semantic := e.semanticMatcher.Match(ctx, resumeText, jdText)

	final := e.combiner.FinalScore(hard.Score, semantic.Score)
	verdict := e.combiner.Verdict(final)

	feedback := e.feedback.Generate(ctx, resumeText, jdText, verdict, hard.MissingSkills)

	e.metrics.ObserveEvaluation(string(verdict), time.Since(started))
	e.log.Info("✅ Resume evaluated",
		zap.Float64("final_score", final),
		zap.String("verdict", string(verdict)),
		zap.Bool("semantic_available", semantic.Available()),
	)

	return &ResumeEvaluation{
		HardScore:      hard.Score,
		Semantic:       semantic,
		FinalScore:     final,
		Verdict:        verdict,
		MissingSkills:  hard.MissingSkills,
		Feedback:       feedback.Text,
		FeedbackFailed: feedback.Failed,
	}, nil
}
