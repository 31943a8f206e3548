package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/config"
	"sahilparate51/resume-relevance/internal/repositories"
)

// Pipeline bundles the services an entry point needs to score resumes.
type Pipeline struct {
	Extractor TextExtractor
	Evaluator EvaluatorService
	Analyzer  AnalyzerService

	closers []func() error
}

func NewPipeline(
	ctx context.Context,
	cfg *config.Config,
	evalRepo repositories.EvaluationRepository,
	metrics *Metrics,
	log *zap.Logger,
) (*Pipeline, error) {
	p := &Pipeline{}

	gemini, err := NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}
	log.Info("✅ Gemini AI initialized successfully", zap.String("model", cfg.Gemini.Model))

	var index VectorIndex
	switch cfg.Scoring.VectorIndex {
	case "", "memory":
		index = NewMemoryIndex()
	case "qdrant":
		qdrantService, err := NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Qdrant: %w", err)
		}
		if err := qdrantService.InitCollection(ctx); err != nil {
			qdrantService.Close()
			return nil, fmt.Errorf("failed to initialize Qdrant collection: %w", err)
		}
		p.closers = append(p.closers, qdrantService.Close)
		index = qdrantService
		log.Info("✅ Qdrant initialized successfully")
	default:
		return nil, fmt.Errorf("unsupported vector index: %s", cfg.Scoring.VectorIndex)
	}

	combiner := ScoreCombiner{
		HardWeight:      cfg.Scoring.HardWeight,
		SemanticWeight:  cfg.Scoring.SemanticWeight,
		HighThreshold:   cfg.Scoring.HighThreshold,
		MediumThreshold: cfg.Scoring.MediumThreshold,
	}

	p.Extractor = NewTextExtractor()
	p.Evaluator = NewEvaluatorService(
		NewHardMatcher(cfg.Scoring.Vocabulary, WithFuzzyThreshold(cfg.Scoring.FuzzyThreshold)),
		NewSemanticMatcher(gemini, index, cfg.Scoring.SemanticTimeout, metrics, log),
		combiner,
		NewFeedbackGenerator(gemini, cfg.Scoring.FeedbackTemperature, cfg.Scoring.FeedbackTimeout, metrics, log),
		metrics,
		log,
	)
	p.Analyzer = NewAnalyzerService(p.Extractor, p.Evaluator, evalRepo, metrics, log)

	return p, nil
}

func (p *Pipeline) Close() error {
	var firstErr error
	for _, closeFn := range p.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
