package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sahilparate51/resume-relevance/internal/models"
)

// EvaluationRepository is an append-only log of evaluations.
type EvaluationRepository interface {
	Create(ctx context.Context, eval *models.Evaluation) error
	FindAll(ctx context.Context) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(ctx context.Context, eval *models.Evaluation) error {
	// id and timestamp are always assigned at insert
	eval.ID = 0
	eval.Timestamp = time.Time{}

	if err := r.db.WithContext(ctx).Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

// FindAll returns every evaluation, newest first.
func (r *evaluationRepository) FindAll(ctx context.Context) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&evals).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find evaluations: %w", err)
	}

	return evals, nil
}
