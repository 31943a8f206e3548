package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/models"
	"sahilparate51/resume-relevance/internal/repositories"
)

// AnalysisSession is the job description a batch is scored against. It lives
// for one request.
type AnalysisSession struct {
	JDTitle string
	JDText  string
}

// UploadedDocument points at a stored upload; Filename is what the user sent.
type UploadedDocument struct {
	Filename string
	Path     string
}

type AnalyzerService interface {
	LoadJobDescription(doc UploadedDocument) (*AnalysisSession, error)
	Analyze(ctx context.Context, session *AnalysisSession, resumes []UploadedDocument) ([]models.AnalysisResult, error)
}

type analyzerService struct {
	extractor TextExtractor
	evaluator EvaluatorService
	evalRepo  repositories.EvaluationRepository
	metrics   *Metrics
	log       *zap.Logger
}

func NewAnalyzerService(
	extractor TextExtractor,
	evaluator EvaluatorService,
	evalRepo repositories.EvaluationRepository,
	metrics *Metrics,
	log *zap.Logger,
) AnalyzerService {
	return &analyzerService{
		extractor: extractor,
		evaluator: evaluator,
		evalRepo:  evalRepo,
		metrics:   metrics,
		log:       log.Named("analyzer"),
	}
}

// JobDescriptionError reports a job description that produced no text.
type JobDescriptionError struct {
	Result ExtractionResult
}

func (e *JobDescriptionError) Error() string {
	return fmt.Sprintf("failed to process job description: %s", e.Result.Message())
}

func (a *analyzerService) LoadJobDescription(doc UploadedDocument) (*AnalysisSession, error) {
	result := a.extractor.Extract(doc.Path)
	if !result.OK() {
		a.metrics.ObserveExtractionFailure(result.Failure)
		return nil, &JobDescriptionError{Result: result}
	}

	a.log.Info("📄 Job description loaded", zap.String("jd_title", doc.Filename), zap.Int("chars", len(result.Text)))
	return &AnalysisSession{JDTitle: doc.Filename, JDText: result.Text}, nil
}

// Analyze scores resumes one at a time in upload order. A resume that cannot
// be extracted becomes a Processing Error row and the batch continues. A
// storage error stops the batch and is returned with the rows done so far.
func (a *analyzerService) Analyze(ctx context.Context, session *AnalysisSession, resumes []UploadedDocument) ([]models.AnalysisResult, error) {
	results := make([]models.AnalysisResult, 0, len(resumes))

	for i, resume := range resumes {
		a.log.Info("🔄 Analyzing resume",
			zap.Int("index", i+1),
			zap.Int("total", len(resumes)),
			zap.String("resume", resume.Filename),
		)

		extracted := a.extractor.Extract(resume.Path)
		if !extracted.OK() {
			a.metrics.ObserveExtractionFailure(extracted.Failure)
			a.log.Warn("⚠️  Failed to process resume",
				zap.String("resume", resume.Filename),
				zap.String("failure", string(extracted.Failure)),
				zap.String("detail", extracted.Detail),
			)
			results = append(results, models.AnalysisResult{
				ResumeFilename: resume.Filename,
				Verdict:        models.VerdictProcessingError,
				Score:          0,
				MissingSkills:  []string{},
				Feedback:       fmt.Sprintf("❌ Failed to process resume: %s", extracted.Message()),
			})
			continue
		}

		eval, err := a.evaluator.EvaluateResume(ctx, extracted.Text, session.JDText)
		if err != nil {
			return results, fmt.Errorf("failed to evaluate %s: %w", resume.Filename, err)
		}

		record := &models.Evaluation{
			JDTitle:        session.JDTitle,
			ResumeFilename: resume.Filename,
			RelevanceScore: eval.FinalScore,
			Verdict:        eval.Verdict,
			MissingSkills:  models.JoinSkills(eval.MissingSkills),
			Feedback:       eval.Feedback,
		}
		if err := a.evalRepo.Create(ctx, record); err != nil {
			return results, fmt.Errorf("failed to save evaluation for %s: %w", resume.Filename, err)
		}

		results = append(results, models.AnalysisResult{
			EvaluationID:   record.ID,
			JDTitle:        session.JDTitle,
			ResumeFilename: resume.Filename,
			Score:          eval.FinalScore,
			HardScore:      eval.HardScore,
			SemanticScore:  eval.Semantic.Score,
			SemanticStatus: string(eval.Semantic.Status),
			Verdict:        eval.Verdict,
			MissingSkills:  eval.MissingSkills,
			Feedback:       eval.Feedback,
		})
	}

	return results, nil
}
