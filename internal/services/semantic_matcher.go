package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type SemanticStatus string

const (
	SemanticScored      SemanticStatus = "scored"
	SemanticUnavailable SemanticStatus = "unavailable"
)

// SemanticResult carries the similarity score and whether it was actually
// computed. Unavailable results always have Score 0.
type SemanticResult struct {
	Score  float64
	Status SemanticStatus
}

func (r SemanticResult) Available() bool {
	return r.Status == SemanticScored
}

type SemanticMatcher interface {
	Match(ctx context.Context, resumeText, jdText string) SemanticResult
}

type semanticMatcher struct {
	embedder Embedder
	index    VectorIndex
	timeout  time.Duration
	metrics  *Metrics
	log      *zap.Logger
}

func NewSemanticMatcher(embedder Embedder, index VectorIndex, timeout time.Duration, metrics *Metrics, log *zap.Logger) SemanticMatcher {
	return &semanticMatcher{
		embedder: embedder,
		index:    index,
		timeout:  timeout,
		metrics:  metrics,
		log:      log.Named("semantic"),
	}
}

// Match returns similarity*100. The score is not clamped; cosine similarity
// puts it in [-100, 100]. Any failure degrades to an unavailable result.
func (s *semanticMatcher) Match(ctx context.Context, resumeText, jdText string) SemanticResult {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	similarity, err := s.similarity(ctx, resumeText, jdText)
	if err != nil {
		s.log.Warn("⚠️  Semantic matching failed, defaulting to 0", zap.Error(err))
		s.metrics.ObserveSemanticFallback()
		return SemanticResult{Score: 0, Status: SemanticUnavailable}
	}

	return SemanticResult{Score: similarity * 100, Status: SemanticScored}
}

func (s *semanticMatcher) similarity(ctx context.Context, resumeText, jdText string) (float64, error) {
	jdVector, err := s.embedder.GenerateEmbedding(ctx, jdText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed job description: %w", err)
	}

	resumeVector, err := s.embedder.GenerateEmbedding(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed resume: %w", err)
	}

	score, err := s.index.NearestScore(ctx, jdVector, resumeVector)
	if err != nil {
		return 0, fmt.Errorf("failed to query similarity index: %w", err)
	}

	return score, nil
}
