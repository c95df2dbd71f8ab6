package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/domain"
	"gorm.io/gorm"
)

type flashcardRepository struct {
	db *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) *flashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) CreateMany(ctx context.Context, cards []*domain.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(cards).Error
}

func (r *flashcardRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*domain.Flashcard, error) {
	var cards []*domain.Flashcard
	err := r.db.WithContext(ctx).
		Where("reviewer_id = ?", reviewerID).
		Order("position ASC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}
