package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	"sahilparate51/resume-relevance/internal/config"
	"sahilparate51/resume-relevance/internal/models"
	"sahilparate51/resume-relevance/internal/repositories"
)

type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

type fakeIndex struct {
	score float64
	err   error
}

func (f *fakeIndex) NearestScore(_ context.Context, _, _ []float32) (float64, error) {
	return f.score, f.err
}

type fakeGenerator struct {
	text        string
	err         error
	prompt      string
	temperature float32
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string, temperature float32) (string, error) {
	f.prompt = prompt
	f.temperature = temperature
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeExtractor struct {
	results map[string]ExtractionResult
}

func (f *fakeExtractor) Extract(path string) ExtractionResult {
	if r, ok := f.results[path]; ok {
		return r
	}
	return ExtractionResult{Failure: ExtractionReadError, Format: "pdf", Detail: "no such file"}
}

type failingRepo struct{}

func (failingRepo) Create(context.Context, *models.Evaluation) error {
	return errors.New("disk full")
}

func (failingRepo) FindAll(context.Context) ([]models.Evaluation, error) {
	return nil, errors.New("disk full")
}

func newTestRepo(t *testing.T) repositories.EvaluationRepository {
	db, err := config.OpenDatabase("sqlite", filepath.Join(t.TempDir(), "evaluations.db"), logger.Silent)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repositories.NewEvaluationRepository(db)
}

func newTestEvaluator(embedder Embedder, index VectorIndex, generator TextGenerator) EvaluatorService {
	log := zap.NewNop()
	metrics := NewMetrics()
	return NewEvaluatorService(
		NewHardMatcher(config.DefaultSkillVocabulary),
		NewSemanticMatcher(embedder, index, 0, metrics, log),
		NewScoreCombiner(),
		NewFeedbackGenerator(generator, DefaultFeedbackTemperature, 0, metrics, log),
		metrics,
		log,
	)
}
