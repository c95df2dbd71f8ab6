package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/teamdebug/quizard/internal/domain"
	"gorm.io/gorm"
)

type reviewerRepository struct {
	db *gorm.DB
}

func NewReviewerRepository(db *gorm.DB) *reviewerRepository {
	return &reviewerRepository{db: db}
}

func (r *reviewerRepository) Create(ctx context.Context, reviewer *domain.Reviewer) error {
	return r.db.WithContext(ctx).Create(reviewer).Error
}

// GetByIDForUser scopes lookups to the owning user; another user's reviewer
// id behaves as not found.
func (r *reviewerRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Reviewer, error) {
	var reviewer domain.Reviewer
	err := r.db.WithContext(ctx).First(&reviewer, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &reviewer, nil
}

func (r *reviewerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Reviewer, error) {
	var reviewers []*domain.Reviewer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviewers).Error
	if err != nil {
		return nil, err
	}
	return reviewers, nil
}
