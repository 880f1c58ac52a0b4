package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/smart-talent/internal/models"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

type EvaluationRepository interface {
	Create(eval *models.Evaluation) error
	FindByID(id uuid.UUID) (*models.Evaluation, error)
	FindRecent(limit int) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(eval *models.Evaluation) error {
	if err := r.db.Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepository) FindByID(id uuid.UUID) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := r.db.Where("id = ?", id).First(&eval).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEvaluationNotFound
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}

func (r *evaluationRepository) FindRecent(limit int) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&evals).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find evaluations: %w", err)
	}

	return evals, nil
}
