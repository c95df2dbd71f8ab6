package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/domain"
	"gorm.io/gorm"
)

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *quizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateItems(ctx context.Context, items []*domain.QuizItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *quizRepository) ListItemsByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*domain.QuizItem, error) {
	var items []*domain.QuizItem
	err := r.db.WithContext(ctx).
		Where("reviewer_id = ?", reviewerID).
		Order("position ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *quizRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *quizRepository) ListAttemptsByReviewer(ctx context.Context, reviewerID, userID uuid.UUID) ([]*domain.QuizAttempt, error) {
	var attempts []*domain.QuizAttempt
	err := r.db.WithContext(ctx).
		Where("reviewer_id = ? AND user_id = ?", reviewerID, userID).
		Order("created_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
